package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/ui"
	"github.com/aidanlsb/journey/internal/vault"
)

type stdinResult struct {
	Vault string `json:"vault"`
	File  string `json:"file"`
	Date  string `json:"date"`
	Added int    `json:"added"`
}

func runStdin(cmd *cobra.Command, v *vault.Vault) error {
	if f, ok := stdinReader.(*os.File); ok && ui.IsInteractive(f) {
		return handleErrorMsg(ErrMissingArgument, "--stdin expects piped input", "Example: echo 'note' | journey --stdin")
	}

	m, err := selectedMoment(cmd, v)
	if err != nil {
		return handleDomainError(err)
	}

	var lines []string
	scanner := bufio.NewScanner(stdinReader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	session, err := v.Session(m.Date())
	if err != nil {
		return handleDomainError(err)
	}
	added, err := session.AddLines(m, lines, v.Config.SectionFor(categoryFlag))
	if err != nil {
		if added > 0 && !isJSONOutput() {
			fmt.Fprintln(os.Stderr, ui.Warningf("Added %s before the failure", ui.Count(added, "note", "notes")))
		}
		return handleDomainError(err)
	}

	if isJSONOutput() {
		outputSuccess(stdinResult{
			Vault: v.Name,
			File:  relativeToVault(v, session.Path()),
			Date:  m.DateString(),
			Added: added,
		}, &Meta{Count: added})
		return nil
	}

	if added == 0 {
		fmt.Println("No content received from stdin")
		return nil
	}
	fmt.Println(ui.Successf("Added %d notes from stdin", added))
	return nil
}
