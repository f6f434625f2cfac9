package cricbuzz

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestLookup_FallbackOrder(t *testing.T) {
	record := map[string]any{
		"Runs":         float64(45),
		"strikeRate":   "120.5",
		"wicketsTaken": float64(3),
	}

	t.Run("exact match wins", func(t *testing.T) {
		record := map[string]any{"runs": float64(10), "Runs": float64(20)}
		v, ok := Lookup(record, "runs")
		if !ok || v.(float64) != 10 {
			t.Fatalf("unexpected lookup result: %v %v", v, ok)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		v, ok := Lookup(record, "runs")
		if !ok || v.(float64) != 45 {
			t.Fatalf("unexpected lookup result: %v %v", v, ok)
		}
	})

	t.Run("substring containment", func(t *testing.T) {
		v, ok := Lookup(record, "wickets")
		if !ok || v.(float64) != 3 {
			t.Fatalf("unexpected lookup result: %v %v", v, ok)
		}
	})

	t.Run("nil values are skipped", func(t *testing.T) {
		record := map[string]any{"runs": nil, "runsScored": float64(7)}
		if got := LookupInt64(record, "runs"); got != 7 {
			t.Fatalf("unexpected value: %d", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, ok := Lookup(record, "economy"); ok {
			t.Fatalf("expected miss for absent alias")
		}
	})
}

func TestTeamName_Shapes(t *testing.T) {
	t.Run("nested team object", func(t *testing.T) {
		name, err := TeamName(map[string]any{"team": map[string]any{"name": "India"}})
		if err != nil || name != "India" {
			t.Fatalf("unexpected result: %q %v", name, err)
		}
	})

	t.Run("flat object", func(t *testing.T) {
		name, err := TeamName(map[string]any{"teamName": "Australia"})
		if err != nil || name != "Australia" {
			t.Fatalf("unexpected result: %q %v", name, err)
		}
	})

	t.Run("bare string", func(t *testing.T) {
		name, err := TeamName("England")
		if err != nil || name != "England" {
			t.Fatalf("unexpected result: %q %v", name, err)
		}
	})

	t.Run("unrecognized", func(t *testing.T) {
		_, err := TeamName(42)
		if !errors.Is(err, ErrUnrecognizedShape) {
			t.Fatalf("expected ErrUnrecognizedShape, got %v", err)
		}
	})
}

func TestTeamIsWinner(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"bool flag", map[string]any{"name": "India", "isWinner": true}, true},
		{"bool false", map[string]any{"name": "India", "isWinner": false}, false},
		{"numeric flag", map[string]any{"name": "India", "isWinner": float64(1)}, true},
		{"numeric zero", map[string]any{"name": "India", "isWinner": float64(0)}, false},
		{"string flag", map[string]any{"name": "India", "isWinner": "True"}, true},
		{"nested team object", map[string]any{"team": map[string]any{"name": "India", "isWinner": true}}, true},
		{"flag absent", map[string]any{"name": "India"}, false},
		{"not an object", "India", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TeamIsWinner(tc.in); got != tc.want {
				t.Fatalf("TeamIsWinner = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolveFormatColumn(t *testing.T) {
	t.Run("prefers ODI over Test", func(t *testing.T) {
		headers := []string{"ROWHEADER", "Test", "ODI", "T20", "IPL"}
		if got := ResolveFormatColumn(headers); got != 2 {
			t.Fatalf("ResolveFormatColumn = %d, want 2", got)
		}
	})

	t.Run("matches decorated labels", func(t *testing.T) {
		headers := []string{"ROWHEADER", "Test Matches", "ODI Matches"}
		if got := ResolveFormatColumn(headers); got != 2 {
			t.Fatalf("ResolveFormatColumn = %d, want 2", got)
		}
	})

	t.Run("falls back to first non-label column", func(t *testing.T) {
		headers := []string{"ROWHEADER", "List A", "First Class"}
		if got := ResolveFormatColumn(headers); got != 1 {
			t.Fatalf("ResolveFormatColumn = %d, want 1", got)
		}
	})

	t.Run("empty headers", func(t *testing.T) {
		if got := ResolveFormatColumn(nil); got != -1 {
			t.Fatalf("ResolveFormatColumn = %d, want -1", got)
		}
	})
}

func TestStatsGrid(t *testing.T) {
	payload := map[string]any{
		"headers": []any{"ROWHEADER", "Test", "ODI", "T20"},
		"values": []any{
			map[string]any{"values": []any{"Matches", "12", "45", "30"}},
			map[string]any{"values": []any{"Runs", "890", "1,234", "640"}},
		},
	}

	grid := ParseStatsGrid(payload)
	if len(grid.Headers) != 4 || len(grid.Rows) != 2 {
		t.Fatalf("unexpected grid: %+v", grid)
	}

	if got := grid.Metric("runs"); got != "1,234" {
		t.Fatalf("Metric(runs) = %q, want 1,234", got)
	}
	if got := grid.Metric("Matches"); got != "45" {
		t.Fatalf("Metric(Matches) = %q, want 45", got)
	}
	if got := grid.Metric("hundreds"); got != "" {
		t.Fatalf("Metric(hundreds) = %q, want empty", got)
	}

	formats := grid.Formats()
	if len(formats) != 3 || formats[0] != "Test" {
		t.Fatalf("unexpected formats: %+v", formats)
	}
	if col := grid.ColumnForFormat("T20"); col != 3 {
		t.Fatalf("ColumnForFormat(T20) = %d, want 3", col)
	}
	if got := grid.MetricForColumn("Runs", 1); got != "890" {
		t.Fatalf("MetricForColumn(Runs, 1) = %q, want 890", got)
	}
}

func TestParseStatsGrid_MissingData(t *testing.T) {
	grid := ParseStatsGrid(map[string]any{})
	if len(grid.Headers) != 0 || len(grid.Rows) != 0 {
		t.Fatalf("expected empty grid, got %+v", grid)
	}
	if got := grid.Metric("Runs"); got != "" {
		t.Fatalf("expected empty metric, got %q", got)
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234 runs", 1234, true},
		{"45%", 45, true},
		{"-12.5", -12.5, true},
		{"58.33", 58.33, true},
		{"", 0, false},
		{"N/A", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseNumber(%q) = %v %v, want %v %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
