package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/vault"
)

var todayVerbose bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the location of today's file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vault.Open(cfg, vaultName)
		if err != nil {
			return handleDomainError(err)
		}

		info, err := v.Describe(now())
		if err != nil {
			return handleDomainError(err)
		}

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		if !todayVerbose {
			fmt.Println(info.Path)
			return nil
		}

		fmt.Printf("Vault:  %s (%s)\n", v.Name, v.Path)
		fmt.Printf("Date:   %s\n", info.Date)
		fmt.Printf("File:   %s\n", info.Path)
		if !info.Exists {
			fmt.Println("Status: not created yet")
			return nil
		}
		fmt.Printf("Status: exists, %s, %d %s\n", humanize.Bytes(uint64(info.Size)), info.Entries, pluralize("note", info.Entries))
		if info.ModTime != nil {
			fmt.Printf("Edited: %s\n", humanize.Time(*info.ModTime))
		}
		return nil
	},
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func init() {
	todayCmd.Flags().StringVarP(&vaultName, "vault", "v", "", "Name of the vault (uses default if not specified)")
	todayCmd.Flags().BoolVar(&todayVerbose, "verbose", false, "Show detailed information including file existence")
	ctlCmd.AddCommand(todayCmd)
}
