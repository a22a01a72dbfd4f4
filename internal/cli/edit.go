package cli

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/vault"
)

type editResult struct {
	Vault  string `json:"vault"`
	File   string `json:"file"`
	Date   string `json:"date"`
	Exists bool   `json:"exists"`
	Editor string `json:"editor"`
}

// openEditor is swapped in tests.
var openEditor = vault.OpenInEditor

func runEdit(cmd *cobra.Command, v *vault.Vault) error {
	m, err := selectedMoment(cmd, v)
	if err != nil {
		return handleDomainError(err)
	}

	path, err := v.DocumentPath(m.Date())
	if err != nil {
		return handleDomainError(err)
	}
	_, statErr := os.Stat(path)
	exists := statErr == nil
	editor := cfg.GetEditor()

	// JSON callers get the location; nothing interactive is started.
	if isJSONOutput() {
		outputSuccess(editResult{
			Vault:  v.Name,
			File:   relativeToVault(v, path),
			Date:   m.DateString(),
			Exists: exists,
			Editor: editor,
		}, nil)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return handleError(ErrFileWriteError, err, "")
	}

	slog.Debug("opening editor", "editor", editor, "path", path)
	if err := openEditor(editor, path); err != nil {
		return handleError(ErrEditorFailed, err, "Set 'editor' in config.toml or $EDITOR")
	}
	return nil
}
