package vault

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aidanlsb/journey/internal/shellquote"
)

// EditorCommand builds the command that opens filePath in editor. Editors
// with arguments (e.g. "code --wait") run through the shell.
func EditorCommand(editor, filePath string) (*exec.Cmd, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		return nil, fmt.Errorf("no editor configured")
	}
	if strings.ContainsAny(editor, " \t") {
		return exec.Command("sh", "-c", editor+" "+shellquote.Quote(filePath)), nil
	}
	return exec.Command(editor, filePath), nil
}

// OpenInEditor opens filePath in editor attached to the current terminal
// and waits for it to exit.
func OpenInEditor(editor, filePath string) error {
	cmd, err := EditorCommand(editor, filePath)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor '%s' failed: %w", editor, err)
	}
	return nil
}
