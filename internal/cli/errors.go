// Package cli implements the journey and journeyctl command-line interfaces.
package cli

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/paths"
	"github.com/aidanlsb/journey/internal/template"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	// Vault errors
	ErrVaultNotFound     = "VAULT_NOT_FOUND"
	ErrVaultNotSpecified = "VAULT_NOT_SPECIFIED"
	ErrVaultExists       = "VAULT_EXISTS"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// Date and time errors
	ErrDateParse              = "DATE_PARSE_ERROR"
	ErrTimeParse              = "TIME_PARSE_ERROR"
	ErrInvalidFormatOverride  = "INVALID_FORMAT_OVERRIDE"
	ErrFormatOverrideMismatch = "FORMAT_OVERRIDE_MISMATCH"

	// File errors
	ErrTemplateRead     = "TEMPLATE_READ_ERROR"
	ErrFileReadError    = "FILE_READ_ERROR"
	ErrFileWriteError   = "FILE_WRITE_ERROR"
	ErrFileOutsideVault = "FILE_OUTSIDE_VAULT"
	ErrEditorFailed     = "EDITOR_FAILED"

	// Index errors
	ErrIndexLocked = "INDEX_LOCKED"
	ErrIndexError  = "INDEX_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// classifyError maps an error from the domain packages to a stable code and
// a suggestion for the user.
func classifyError(err error) (string, string) {
	var (
		dateErr     *dates.DateParseError
		timeErr     *dates.TimeParseError
		mismatchErr *dates.FormatOverrideMismatchError
		readErr     *template.ReadError
		writeErr    *journal.WriteError
		notFound    *config.VaultNotFoundError
		parseErr    *config.ParseError
		verrs       validation.Errors
	)

	switch {
	case errors.As(err, &dateErr):
		if dateErr.Forced {
			return ErrDateParse, "The vault forces date_format; write the date in that format or pass --date-format"
		}
		return ErrDateParse, "Use YYYY-MM-DD, today/yesterday/tomorrow, or a date in the vault's locale"
	case errors.As(err, &mismatchErr):
		return ErrFormatOverrideMismatch, "Write the time in the forced format or change --time-format"
	case errors.As(err, &timeErr):
		return ErrTimeParse, "Use HH:MM, HH:MM:SS or h:mm AM/PM"
	case errors.Is(err, dates.ErrInvalidFormatOverride):
		return ErrInvalidFormatOverride, "Use '12h' or '24h'"
	case errors.As(err, &readErr):
		return ErrTemplateRead, "Check template_file in journey.yaml"
	case errors.Is(err, paths.ErrPathOutsideVault):
		return ErrFileOutsideVault, "Check file_path_format in journey.yaml"
	case errors.As(err, &writeErr):
		return ErrFileWriteError, ""
	case errors.As(err, &notFound):
		if notFound.Name == "" {
			return ErrVaultNotSpecified, "Pass --vault <name> or run 'journeyctl set-default <name>'"
		}
		return ErrVaultNotFound, "Run 'journeyctl list' to see configured vaults"
	case errors.Is(err, config.ErrNoVaults):
		return ErrVaultNotFound, "Run 'journeyctl init --path <dir>' to create a vault"
	case errors.Is(err, journal.ErrEmptyNote), errors.Is(err, journal.ErrMultilineNote):
		return ErrInvalidInput, ""
	case errors.As(err, &parseErr):
		return ErrConfigInvalid, "Fix the syntax of " + parseErr.Path
	case errors.As(err, &verrs):
		return ErrConfigInvalid, "Fix journey.yaml in the vault root"
	}
	return ErrInternal, ""
}

// handleDomainError reports err with the code classifyError assigns to it.
// Batch failures carry the failing line number as details.
func handleDomainError(err error) error {
	code, suggestion := classifyError(err)

	var batchErr *journal.BatchError
	if errors.As(err, &batchErr) {
		return handleErrorWithDetails(code, err.Error(), suggestion, map[string]int{"line": batchErr.Line})
	}
	return handleError(code, err, suggestion)
}
