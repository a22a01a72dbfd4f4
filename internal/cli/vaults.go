package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/ui"
)

type vaultRow struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	IsDefault bool   `json:"is_default"`
}

func vaultRows(c *config.Config) []vaultRow {
	names := c.VaultNames()
	rows := make([]vaultRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, vaultRow{
			Name:      name,
			Path:      c.Vaults[name],
			IsDefault: name == strings.TrimSpace(c.DefaultVault),
		})
	}
	return rows
}

var ctlListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured vaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := vaultRows(cfg)
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path":   resolvedConfigPath,
				"default_vault": cfg.DefaultVault,
				"vaults":        rows,
			}, &Meta{Count: len(rows)})
			return nil
		}

		if len(rows) == 0 {
			fmt.Println("No vaults configured.")
			fmt.Println(ui.Hint("Run 'journeyctl init --path <dir>' to create one."))
			return nil
		}

		tableRows := make([]ui.VaultRow, len(rows))
		for i, r := range rows {
			tableRows[i] = ui.VaultRow{Name: r.Name, Path: r.Path, Default: r.IsDefault}
		}
		fmt.Println(ui.RenderVaultTable(tableRows))
		fmt.Println()
		fmt.Println(ui.Hint("* = default vault"))
		fmt.Println(ui.Hint("config: " + resolvedConfigPath))
		return nil
	},
}

var setDefaultCmd = &cobra.Command{
	Use:   "set-default <vault-name>",
	Short: "Set the default vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if err := cfg.SetDefault(name); err != nil {
			return handleDomainError(err)
		}
		if err := config.SaveTo(resolvedConfigPath, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"default_vault": name,
				"config_path":   resolvedConfigPath,
			}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Default vault set to '%s'", ui.VaultName(name)))
		return nil
	},
}

var unsetDefaultCmd = &cobra.Command{
	Use:   "unset-default",
	Short: "Unset the default vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		previous := strings.TrimSpace(cfg.DefaultVault)
		cfg.DefaultVault = ""
		if previous != "" {
			if err := config.SaveTo(resolvedConfigPath, cfg); err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"previous_default": previous,
				"config_path":      resolvedConfigPath,
			}, nil)
			return nil
		}
		if previous == "" {
			fmt.Println("No default vault was set.")
			return nil
		}
		fmt.Println(ui.Successf("Default vault '%s' unset", previous))
		return nil
	},
}

var showDefaultCmd = &cobra.Command{
	Use:   "show-default",
	Short: "Show the current default vault",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(cfg.DefaultVault)
		path := ""
		if name != "" {
			path = cfg.Vaults[name]
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"default_vault": name,
				"path":          path,
			}, nil)
			return nil
		}
		if name == "" {
			fmt.Println("No default vault set.")
			return nil
		}
		fmt.Printf("%s -> %s\n", ui.VaultName(name), ui.FilePath(path))
		return nil
	},
}

var unlistVaultCmd = &cobra.Command{
	Use:   "unlist-vault <vault-name>",
	Short: "Remove a vault from the configuration (files are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		path, ok := cfg.Vaults[name]
		if !ok {
			return handleDomainError(&config.VaultNotFoundError{Name: name, Available: cfg.VaultNames()})
		}
		wasDefault := cfg.DefaultVault == name
		cfg.RemoveVault(name)
		if err := config.SaveTo(resolvedConfigPath, cfg); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"name":            name,
				"path":            path,
				"default_cleared": wasDefault,
			}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Unlisted vault '%s' (%s)", name, path))
		if wasDefault {
			fmt.Println(ui.Hint("Cleared default vault."))
		}
		return nil
	},
}

func init() {
	ctlCmd.AddCommand(ctlListCmd)
	ctlCmd.AddCommand(setDefaultCmd)
	ctlCmd.AddCommand(unsetDefaultCmd)
	ctlCmd.AddCommand(showDefaultCmd)
	ctlCmd.AddCommand(unlistVaultCmd)
}
