package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/journal"
	"github.com/aidanlsb/journey/internal/paths"
	"github.com/aidanlsb/journey/internal/slugs"
	"github.com/aidanlsb/journey/internal/ui"
)

// ctlCmd represents the journeyctl command.
var ctlCmd = &cobra.Command{
	Use:   "journeyctl",
	Short: "Journey vault management tool",
	Long: `journeyctl registers journal vaults and manages the default vault.

Vaults live in the global config ($JOURNEY_CONFIG or ~/.config/journey/config.toml).
Each vault keeps its own settings in journey.yaml at the vault root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(debugLogging)
		return loadGlobalConfig()
	},
}

// ExecuteCtl runs the journeyctl CLI.
func ExecuteCtl() error {
	ctlCmd.Version = currentVersionInfo().Version
	return execute(ctlCmd)
}

var (
	initPath      string
	initName      string
	initVaultType string
	initLocale    string
)

type initResult struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Locale     string `json:"locale"`
	ListType   string `json:"list_type"`
	ConfigPath string `json:"config_path"`
	Created    bool   `json:"vault_config_created"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new vault",
	Long: `Create a vault directory, write its journey.yaml and register it.

The vault name defaults to the directory name. The locale defaults to
$LANG, then $LC_ALL, then en-US.

Examples:
  journeyctl init --path ~/journal
  journeyctl init --path ~/work-log --name work --vault-type table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(initPath) == "" {
			return handleErrorMsg(ErrMissingArgument, "--path is required", "Usage: journeyctl init --path <dir>")
		}

		listType := strings.ToLower(strings.TrimSpace(initVaultType))
		if listType == "" {
			listType = string(journal.ListBullet)
		}

		path, err := filepathAbs(initPath)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		name := strings.TrimSpace(initName)
		if name == "" {
			name = slugs.VaultName(path)
		}
		if existing, ok := cfg.Vaults[name]; ok {
			return handleErrorMsg(ErrVaultExists,
				fmt.Sprintf("vault '%s' already registered at %s", name, existing),
				"Pass --name to register it under another name, or 'journeyctl unlist-vault "+name+"' first")
		}

		vc := config.DefaultVaultConfig()
		vc.Locale = initLocale
		if vc.Locale == "" {
			vc.Locale = systemLocale()
		}
		vc.ListType = listType
		if err := vc.Validate(); err != nil {
			return handleError(ErrInvalidInput, err, "--vault-type must be 'bullet' or 'table'")
		}

		if err := os.MkdirAll(path, 0o755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		created, err := config.CreateDefaultVaultConfig(path, vc)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		cfg.AddVault(name, path)
		if err := config.SaveTo(resolvedConfigPath, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(initResult{
				Name:       name,
				Path:       path,
				Locale:     vc.Locale,
				ListType:   vc.ListType,
				ConfigPath: resolvedConfigPath,
				Created:    created,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Vault '%s' initialized at %s", ui.VaultName(name), ui.FilePath(path)))
		if !created {
			fmt.Println(ui.Hint("Kept existing " + config.VaultConfigFile))
		}
		return nil
	},
}

func filepathAbs(p string) (string, error) {
	expanded, err := paths.ExpandHome(p)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// systemLocale reads the locale from the environment the way a shell sets it.
func systemLocale() string {
	for _, key := range []string{"LANG", "LC_ALL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return "en-US"
}

func init() {
	addGlobalFlags(ctlCmd)

	initCmd.Flags().StringVarP(&initPath, "path", "p", "", "Path to the vault directory")
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Name of the vault (defaults to the directory name)")
	initCmd.Flags().StringVarP(&initVaultType, "vault-type", "v", "", "Entry layout: bullet or table")
	initCmd.Flags().StringVar(&initLocale, "locale", "", "Locale for dates (defaults to $LANG)")

	ctlCmd.AddCommand(initCmd)
}
