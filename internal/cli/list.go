package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/ui"
	"github.com/aidanlsb/journey/internal/vault"
	"github.com/aidanlsb/journey/internal/watcher"
)

type listResult struct {
	Vault   string                `json:"vault"`
	File    string                `json:"file"`
	Date    string                `json:"date"`
	Exists  bool                  `json:"exists"`
	Entries []journal.ListedEntry `json:"entries"`
}

func runList(cmd *cobra.Command, v *vault.Vault) error {
	if followFlag && isJSONOutput() {
		return handleErrorMsg(ErrInvalidInput, "--follow cannot be combined with --json", "")
	}

	m, err := selectedMoment(cmd, v)
	if err != nil {
		return handleDomainError(err)
	}

	path, err := v.DocumentPath(m.Date())
	if err != nil {
		return handleDomainError(err)
	}
	doc, err := journal.Read(path)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	entries := []journal.ListedEntry{}
	if doc != nil {
		entries = append(entries, doc.Entries()...)
	}

	if isJSONOutput() {
		outputSuccess(listResult{
			Vault:   v.Name,
			File:    relativeToVault(v, path),
			Date:    m.DateString(),
			Exists:  doc != nil,
			Entries: entries,
		}, &Meta{Count: len(entries)})
		return nil
	}

	day := displayDate(v, m)
	if len(entries) == 0 {
		fmt.Printf("No notes found for %s\n", day)
	} else {
		fmt.Println(ui.Header(fmt.Sprintf("Notes for %s:", day)))
		printEntries(entries, v.Config.Format())
	}

	if followFlag {
		return followDocument(cmd, v, path, newShownEntries(entries))
	}
	return nil
}

func printEntries(entries []journal.ListedEntry, format journal.Format) {
	lines := journal.RenderList(entries, format)

	display := ui.NewDisplayContext()
	if display.IsTTY {
		rendered, err := ui.RenderMarkdown(strings.Join(lines, "\n")+"\n", display.TermWidth)
		if err == nil {
			fmt.Print(rendered)
			return
		}
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// followDocument prints notes added to path until interrupted. shown holds
// the entries already listed.
func followDocument(cmd *cobra.Command, v *vault.Vault, path string, shown shownEntries) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return handleError(ErrFileWriteError, err, "")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	format := v.Config.Format()
	format.ShowTableHeader = false

	w, err := watcher.New(watcher.Config{
		Path: path,
		OnChange: func(path string) {
			fresh, current, err := entriesAfter(path, shown)
			if err != nil {
				slog.Warn("failed to read document", "path", path, "error", err)
				return
			}
			shown = current
			if len(fresh) > 0 {
				printEntries(fresh, format)
			}
		},
	})
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	fmt.Println(ui.Hint("Following " + relativeToVault(v, path) + " (Ctrl-C to stop)"))
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return handleError(ErrFileReadError, err, "")
	}
	return nil
}

// shownEntries counts the entries already printed, keyed by section and
// line. Notes can land in any section, so position in the document says
// nothing about what is new.
type shownEntries map[string]int

func entryKey(e journal.ListedEntry) string {
	return e.Section + "\x00" + strings.TrimSpace(e.Line)
}

func newShownEntries(entries []journal.ListedEntry) shownEntries {
	shown := make(shownEntries, len(entries))
	for _, e := range entries {
		shown[entryKey(e)]++
	}
	return shown
}

// entriesAfter returns the entries of the document at path that are not in
// shown, in document order, together with the entries now present. A missing
// document leaves shown unchanged.
func entriesAfter(path string, shown shownEntries) ([]journal.ListedEntry, shownEntries, error) {
	doc, err := journal.Read(path)
	if err != nil || doc == nil {
		return nil, shown, err
	}
	entries := doc.Entries()
	current := newShownEntries(entries)

	var fresh []journal.ListedEntry
	remaining := make(map[string]int, len(shown))
	for k, n := range shown {
		remaining[k] = n
	}
	for _, e := range entries {
		k := entryKey(e)
		if remaining[k] > 0 {
			remaining[k]--
			continue
		}
		fresh = append(fresh, e)
	}
	return fresh, current, nil
}
