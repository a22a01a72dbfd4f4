package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/ui"
	"github.com/aidanlsb/journey/internal/vault"
)

type addResult struct {
	Vault   string `json:"vault"`
	File    string `json:"file"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Section string `json:"section,omitempty"`
	Content string `json:"content"`
}

func runAdd(cmd *cobra.Command, v *vault.Vault, text string) error {
	m, err := selectedMoment(cmd, v)
	if err != nil {
		return handleDomainError(err)
	}

	session, err := v.Session(m.Date())
	if err != nil {
		return handleDomainError(err)
	}

	section := v.Config.SectionFor(categoryFlag)
	if err := session.Add(m, text, section); err != nil {
		return handleDomainError(err)
	}
	if err := session.Flush(); err != nil {
		return handleDomainError(err)
	}

	rel := relativeToVault(v, session.Path())
	if isJSONOutput() {
		outputSuccess(addResult{
			Vault:   v.Name,
			File:    rel,
			Date:    m.DateString(),
			Time:    dates.FormatTimeOfDay(m),
			Section: section,
			Content: session.Last().Content,
		}, nil)
		return nil
	}

	fmt.Println(ui.Successf("Note added to %s", ui.FilePath(rel)))
	return nil
}

func relativeToVault(v *vault.Vault, path string) string {
	rel, err := filepath.Rel(v.Path, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
