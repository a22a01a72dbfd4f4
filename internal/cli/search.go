package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/index"
	"github.com/aidanlsb/journey/internal/ui"
	"github.com/aidanlsb/journey/internal/vault"
)

var (
	searchLimit   int
	searchFrom    string
	searchTo      string
	searchRebuild bool
)

type searchResult struct {
	Vault   string          `json:"vault"`
	Query   string          `json:"query"`
	Results []index.Result  `json:"results"`
	Sync    index.SyncStats `json:"sync"`
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes across all days",
	Long: `Search note text in every document of the vault.

The vault is indexed incrementally before each search; the index lives in
.journey/index.db and can be rebuilt with --rebuild.

Examples:
  journeyctl search dentist
  journeyctl search '"release notes" OR changelog' --limit 5
  journeyctl search standup --from 2025-10-01 --to 2025-10-31`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return handleErrorMsg(ErrMissingArgument, "search query is empty", "")
		}
		for _, bound := range []string{searchFrom, searchTo} {
			if bound != "" && !dates.IsValidDate(bound) {
				return handleErrorMsg(ErrDateParse, fmt.Sprintf("invalid date %q", bound), "Use YYYY-MM-DD for --from and --to")
			}
		}

		v, err := vault.Open(cfg, vaultName)
		if err != nil {
			return handleDomainError(err)
		}

		idx, err := index.Open(v.Path)
		if err != nil {
			if errors.Is(err, index.ErrLocked) {
				return handleError(ErrIndexLocked, err, "Wait for the other journey process to finish")
			}
			return handleError(ErrIndexError, err, "")
		}
		defer idx.Close()

		if searchRebuild {
			if err := idx.Reset(); err != nil {
				return handleError(ErrIndexError, err, "")
			}
		}
		stats, err := idx.Sync(v.Path)
		if err != nil {
			return handleError(ErrIndexError, err, "Run 'journeyctl search --rebuild' to rebuild the index")
		}

		results, err := idx.Search(query, index.SearchOptions{Limit: searchLimit, From: searchFrom, To: searchTo})
		if err != nil {
			return handleError(ErrInvalidInput, err, "Check the query syntax; quote phrases with \"...\"")
		}
		if results == nil {
			results = []index.Result{}
		}

		if isJSONOutput() {
			outputSuccess(searchResult{Vault: v.Name, Query: query, Results: results, Sync: stats}, &Meta{Count: len(results)})
			return nil
		}

		if len(results) == 0 {
			fmt.Printf("No notes match %q\n", query)
			return nil
		}
		fmt.Println(ui.Header(fmt.Sprintf("%s for %q:", ui.Count(len(results), "match", "matches"), query)))
		for _, r := range results {
			when := strings.TrimSpace(r.Date + " " + r.Time)
			fmt.Printf("%s  %s  %s\n", ui.Timestamp(when), r.Snippet, ui.Hint(r.File))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&vaultName, "vault", "v", "", "Name of the vault (uses default if not specified)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "Maximum number of results")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "Only documents dated on or after YYYY-MM-DD")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "Only documents dated on or before YYYY-MM-DD")
	searchCmd.Flags().BoolVar(&searchRebuild, "rebuild", false, "Rebuild the index from scratch first")
	ctlCmd.AddCommand(searchCmd)
}
