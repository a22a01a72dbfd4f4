package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/ui"
	"github.com/aidanlsb/journey/internal/vault"
)

var (
	// Global flags
	vaultName    string
	configPath   string
	debugLogging bool

	// Note flags
	dateFlag       string
	relativeFlag   int
	timeFlag       string
	timeFormatFlag string
	dateFormatFlag string
	categoryFlag   string
	addNoteFlag    string
	listFlag       bool
	followFlag     bool
	editFlag       bool
	stdinFlag      bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config

	// Test seams
	now                   = time.Now
	stdinReader io.Reader = os.Stdin
)

// rootCmd represents the journey command.
var rootCmd = &cobra.Command{
	Use:   "journey [note text...]",
	Short: "Journey - a plain-text journal",
	Long: `Journey appends timestamped notes to a daily markdown document in a vault.

With note text, the note is added to the document for the selected day.
Without text (or with --list), the day's notes are listed.

Examples:
  journey "Shipped the release"
  journey -c work "Standup: unblocked the migration"
  journey -d yesterday -t "4:15 PM" "Forgot to log the dentist"
  journey -d 24.10.2025 --list
  journey --list --follow
  journey -r 1 -e
  git log --format=%s -n 5 | journey --stdin`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(debugLogging)
		return loadGlobalConfig()
	},
	RunE: runJourney,
}

func runJourney(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("date") && cmd.Flags().Changed("relative") {
		return handleErrorMsg(ErrInvalidInput, "--date and --relative cannot be combined", "")
	}

	v, err := vault.Open(cfg, vaultName)
	if err != nil {
		return handleDomainError(err)
	}

	text := strings.TrimSpace(addNoteFlag)
	if text == "" {
		text = strings.TrimSpace(strings.Join(args, " "))
	}

	switch {
	case listFlag:
		return runList(cmd, v)
	case editFlag:
		return runEdit(cmd, v)
	case stdinFlag:
		return runStdin(cmd, v)
	case text != "":
		return runAdd(cmd, v, text)
	default:
		return runList(cmd, v)
	}
}

// Execute runs the journey CLI.
func Execute() error {
	rootCmd.Version = currentVersionInfo().Version
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	if isJSONOutput() {
		code, suggestion := classifyError(err)
		outputError(code, err.Error(), nil, suggestion)
	} else {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	addGlobalFlags(rootCmd)

	f := rootCmd.Flags()
	f.StringVarP(&vaultName, "vault", "v", "", "Vault name from config (optional with a default or a single vault)")
	f.StringVarP(&dateFlag, "date", "d", "", "Date to use (YYYY-MM-DD, today/yesterday/tomorrow, or a locale date)")
	f.IntVarP(&relativeFlag, "relative", "r", 0, "Days ago (0 = today, 1 = yesterday, -1 = tomorrow)")
	f.StringVarP(&timeFlag, "time", "t", "", "Time of the note (HH:MM, HH:MM:SS or h:mm AM/PM)")
	f.StringVar(&timeFormatFlag, "time-format", "", "Force time parsing to '12h' or '24h'")
	f.StringVar(&dateFormatFlag, "date-format", "", "Force date parsing to one pattern (e.g. DD.MM.YYYY)")
	f.StringVarP(&categoryFlag, "category", "c", "", "Category (mapped to a section header in journey.yaml)")
	f.StringVarP(&addNoteFlag, "add-note", "a", "", "Note text to add")
	f.BoolVarP(&listFlag, "list", "l", false, "List notes for the day")
	f.BoolVarP(&followFlag, "follow", "f", false, "With --list, keep printing notes as they are added")
	f.BoolVarP(&editFlag, "edit", "e", false, "Open the day's document in $EDITOR")
	f.BoolVar(&stdinFlag, "stdin", false, "Add each non-empty line of stdin as a note")
}

func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $JOURNEY_CONFIG or ~/.config/journey/config.toml)")
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Log debug output to stderr")
}

// setupLogging installs the default slog logger on stderr.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func loadGlobalConfig() error {
	resolvedConfigPath = strings.TrimSpace(configPath)
	if resolvedConfigPath == "" {
		resolvedConfigPath = config.DefaultPath()
	}

	loaded, err := config.LoadFrom(resolvedConfigPath)
	if err != nil {
		return err
	}
	cfg = loaded
	if cfg.UI.Accent != "" {
		ui.ConfigureTheme(cfg.UI.Accent)
	}
	slog.Debug("loaded config", "path", resolvedConfigPath, "vaults", len(cfg.Vaults))
	return nil
}
