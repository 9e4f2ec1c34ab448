package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ytgap/internal/output"
	"github.com/ziadkadry99/ytgap/internal/progress"
	"github.com/ziadkadry99/ytgap/internal/trend"
	"github.com/ziadkadry99/ytgap/internal/view"
)

var (
	searchOpts  searchFlags
	searchJSON  bool
	searchLocal bool
	searchSave  []string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find content-gap topics for a date",
	Long: `Asks for search terms with at least --volume daily searches and a
video-to-search ratio below --saturation, then prints them in --sort order.
Terms passed with --save are added to the saved list.`,
	Example: `  ytgap search --niche cooking --volume 100000 --saturation 0.001
  ytgap search --date 2024-05-01 --sort saturation --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := searchOpts.params(time.Now())
		if err != nil {
			return err
		}

		tc, err := newTrendsClient(cfg, searchLocal)
		if err != nil {
			return err
		}
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		state := view.NewState(ctx, tc, store, view.WithLogger(log))
		state.Params = params

		reporter := progress.NewReporter(cmd.ErrOrStderr())
		reporter.Start("Searching for content gaps...")
		err = state.Search(ctx)
		reporter.Stop("")
		if err != nil {
			return err
		}

		for _, term := range searchSave {
			if i := trend.IndexOf(state.Results, term); i >= 0 && !state.IsSaved(term) {
				state.ToggleSave(ctx, state.Results[i])
			}
		}

		visible := state.Visible()
		if searchJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(visible)
		}

		if len(visible) == 0 {
			printer.Warning("No topics matched. Try a lower --volume or a looser --saturation.")
			return nil
		}

		printer.Header("Content gaps for " + params.SelectedDate)
		return output.TrendTable(printer.Out(), visible, state.IsSaved)
	},
}

func addSearchParamFlags(cmd *cobra.Command, f *searchFlags) {
	cmd.Flags().StringVar(&f.date, "date", "", "date to search for, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.niche, "niche", "", "restrict topics to a niche")
	cmd.Flags().StringVar(&f.volume, "volume", trend.Volume50K.String(), "minimum daily searches: 10000, 50000, 100000 or 500000")
	cmd.Flags().StringVar(&f.saturation, "saturation", string(trend.Saturation1Pct), "maximum videos per search: 0.05, 0.01, 0.001 or 0.0001")
	cmd.Flags().StringVar(&f.sortBy, "sort", string(trend.SortByDailySearches), "sort by dailySearches, saturation or videoCount")
}

func init() {
	addSearchParamFlags(searchCmd, &searchOpts)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
	searchCmd.Flags().BoolVar(&searchLocal, "local", false, "call the AI provider directly instead of the backend")
	searchCmd.Flags().StringSliceVar(&searchSave, "save", nil, "terms from the results to add to the saved list")
	rootCmd.AddCommand(searchCmd)
}
