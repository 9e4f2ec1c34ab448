package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ytgap/internal/output"
	"github.com/ziadkadry99/ytgap/internal/trend"
	"github.com/ziadkadry99/ytgap/internal/view"
)

var (
	savedSort     string
	savedJSON     bool
	savedSearches int64
	savedVideos   int64
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage the saved trend list",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show saved trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, err := trend.ParseSortBy(savedSort)
		if err != nil {
			return err
		}
		state, closeStore, err := savedState(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		state.SetTab(trend.TabSaved)
		state.SetSort(sortBy)
		visible := state.Visible()

		if savedJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(visible)
		}
		if len(visible) == 0 {
			printer.Info("No saved trends yet. Use `ytgap saved toggle <term>` or `ytgap search --save <term>`.")
			return nil
		}
		printer.Header("Saved trends")
		return output.TrendTable(printer.Out(), visible, nil)
	},
}

var savedToggleCmd = &cobra.Command{
	Use:   "toggle <term>",
	Short: "Save a term, or remove it if it is already saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, closeStore, err := savedState(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		t := trend.Trend{Term: args[0], DailySearches: savedSearches, VideoCount: savedVideos}
		if i := trend.IndexOf(state.Saved, t.Term); i >= 0 {
			t = state.Saved[i]
		}
		state.ToggleSave(cmd.Context(), t)

		if state.IsSaved(t.Term) {
			printer.Success("Saved %q", t.Term)
		} else {
			printer.Success("Removed %q", t.Term)
		}
		return nil
	},
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(cmd.Context()); err != nil {
			return err
		}
		printer.Success("Saved list cleared")
		return nil
	},
}

// savedState opens the configured store and loads the saved list into a
// view state. The returned func closes the store.
func savedState(cmd *cobra.Command) (*view.State, func() error, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return view.NewState(cmd.Context(), nil, store, view.WithLogger(log)), store.Close, nil
}

func init() {
	savedListCmd.Flags().StringVar(&savedSort, "sort", string(trend.SortByDailySearches), "sort by dailySearches, saturation or videoCount")
	savedListCmd.Flags().BoolVar(&savedJSON, "json", false, "print the list as JSON")
	savedToggleCmd.Flags().Int64Var(&savedSearches, "searches", 0, "daily searches to record for a newly saved term")
	savedToggleCmd.Flags().Int64Var(&savedVideos, "videos", 0, "video count to record for a newly saved term")

	savedCmd.AddCommand(savedListCmd, savedToggleCmd, savedClearCmd)
	rootCmd.AddCommand(savedCmd)
}
