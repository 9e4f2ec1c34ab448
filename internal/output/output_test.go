package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

func TestResolveColors(t *testing.T) {
	t.Setenv("TERM", "xterm")
	if !ResolveColors(true) {
		t.Error("expected colors when configured and NO_COLOR unset")
	}
	if ResolveColors(false) {
		t.Error("expected no colors when disabled in config")
	}

	t.Setenv("NO_COLOR", "1")
	if ResolveColors(true) {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut, false)

	p.Success("saved %q", "a")
	p.Error("failed: %s", "boom")
	p.Header("Results")

	if got := out.String(); !strings.Contains(got, `[OK] saved "a"`) {
		t.Errorf("unexpected stdout %q", got)
	}
	if !strings.Contains(out.String(), "Results\n-------") {
		t.Errorf("expected underlined header, got %q", out.String())
	}
	if got := errOut.String(); got != "[ERROR] failed: boom\n" {
		t.Errorf("unexpected stderr %q", got)
	}
	if p.Bold("x") != "x" {
		t.Error("Bold should be a no-op without colors")
	}
}

func TestFormatCount(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		150000:   "150,000",
		12345678: "12,345,678",
		-4500:    "-4,500",
	}
	for in, want := range tests {
		if got := FormatCount(in); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatSaturation(t *testing.T) {
	if got := FormatSaturation(trend.Trend{DailySearches: 100000, VideoCount: 50}); got != "0.0500%" {
		t.Errorf("got %q", got)
	}
	if got := FormatSaturation(trend.Trend{DailySearches: 0, VideoCount: 50}); got != "0.0000%" {
		t.Errorf("zero searches: got %q", got)
	}
}

func TestTrendTable(t *testing.T) {
	var buf bytes.Buffer
	trends := []trend.Trend{
		{Term: "DIY solar gadgets", DailySearches: 150000, VideoCount: 75},
		{Term: "quantum basics", DailySearches: 110000, VideoCount: 40},
	}
	err := TrendTable(&buf, trends, func(term string) bool { return term == "quantum basics" })
	if err != nil {
		t.Fatalf("TrendTable: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"DIY solar gadgets", "150,000", "0.0500%", "★"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "DIY solar gadgets") > strings.Index(got, "quantum basics") {
		t.Error("rows should keep the given order")
	}
}
