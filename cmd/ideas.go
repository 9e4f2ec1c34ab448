package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/ytgap/internal/progress"
	"github.com/ziadkadry99/ytgap/internal/render"
	"github.com/ziadkadry99/ytgap/internal/view"
)

var (
	ideasHTML  string
	ideasJSON  bool
	ideasLocal bool
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <term>",
	Short: "Generate video titles and an outline for a search term",
	Args:  cobra.MinimumNArgs(1),
	Example: `  ytgap ideas "DIY solar-powered gadgets"
  ytgap ideas "sourdough for beginners" --html ideas.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		term := strings.Join(args, " ")

		tc, err := newTrendsClient(cfg, ideasLocal)
		if err != nil {
			return err
		}

		panel := view.NewIdeaPanel(tc, term)
		reporter := progress.NewReporter(cmd.ErrOrStderr())
		reporter.Start("Generating ideas...")
		err = panel.Toggle(cmd.Context())
		reporter.Stop("")
		if err != nil {
			return err
		}
		ideas := panel.Ideas

		switch {
		case ideasJSON:
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ideas)
		case ideasHTML != "":
			page, err := render.Page(term, ideas)
			if err != nil {
				return err
			}
			if ideasHTML == "-" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), page)
				return err
			}
			if err := os.WriteFile(ideasHTML, []byte(page), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", ideasHTML, err)
			}
			printer.Success("Ideas written to %s", ideasHTML)
			return nil
		}

		printer.Header("Video ideas for " + term)
		for i, title := range ideas.Titles {
			printer.Print("%d. %s", i+1, printer.Bold(title))
		}
		printer.Header("Sample outline")
		printer.Print("%s", ideas.Outline)
		return nil
	},
}

func init() {
	ideasCmd.Flags().StringVar(&ideasHTML, "html", "", "write an HTML page to this file (- for stdout)")
	ideasCmd.Flags().BoolVar(&ideasJSON, "json", false, "print ideas as JSON")
	ideasCmd.Flags().BoolVar(&ideasLocal, "local", false, "call the AI provider directly instead of the backend")
	rootCmd.AddCommand(ideasCmd)
}
