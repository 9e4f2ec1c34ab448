package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// Table provides table rendering utilities
type Table struct {
	table  *tablewriter.Table
	header []string
	rows   [][]string
}

// NewTable creates a new table writing to w.
func NewTable(w io.Writer, headers []string) *Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)

	return &Table{table: table, header: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(row []string) {
	t.rows = append(t.rows, row)
}

// Render outputs the table
func (t *Table) Render() error {
	t.table.Header(t.header)
	if err := t.table.Bulk(t.rows); err != nil {
		return err
	}
	return t.table.Render()
}

// TrendTable writes trends as a table in the given order. isSaved marks
// rows whose term is in the saved list; it may be nil.
func TrendTable(w io.Writer, trends []trend.Trend, isSaved func(term string) bool) error {
	t := NewTable(w, []string{"#", "Term", "Daily Searches", "Videos", "Saturation", "Saved"})
	for i, tr := range trends {
		saved := ""
		if isSaved != nil && isSaved(tr.Term) {
			saved = "★"
		}
		t.AddRow([]string{
			strconv.Itoa(i + 1),
			tr.Term,
			FormatCount(tr.DailySearches),
			FormatCount(tr.VideoCount),
			FormatSaturation(tr),
			saved,
		})
	}
	return t.Render()
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// FormatSaturation renders the saturation percentage with four decimals.
func FormatSaturation(t trend.Trend) string {
	return fmt.Sprintf("%.4f%%", trend.SaturationPercent(t))
}
