package cricbuzz

import (
	"regexp"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Lookup returns the first non-nil value for any of the aliases, trying an
// exact key match, then a case-insensitive match, then substring containment
// in either direction. Provider payloads rename fields across endpoint
// versions ("runs", "r", "runsScored"), so single-key access is unreliable.
func Lookup(record map[string]any, aliases ...string) (any, bool) {
	if len(record) == 0 {
		return nil, false
	}

	for _, alias := range aliases {
		if v, ok := record[alias]; ok && v != nil {
			return v, true
		}
	}

	for _, alias := range aliases {
		lowered := strings.ToLower(alias)
		for key, v := range record {
			if v == nil {
				continue
			}
			if strings.ToLower(key) == lowered {
				return v, true
			}
		}
	}

	for _, alias := range aliases {
		lowered := strings.ToLower(alias)
		for key, v := range record {
			if v == nil {
				continue
			}
			keyLower := strings.ToLower(key)
			if strings.Contains(keyLower, lowered) || strings.Contains(lowered, keyLower) {
				return v, true
			}
		}
	}

	return nil, false
}

func LookupString(record map[string]any, aliases ...string) string {
	v, ok := Lookup(record, aliases...)
	if !ok {
		return ""
	}
	return stringValue(v)
}

func LookupInt64(record map[string]any, aliases ...string) int64 {
	v, ok := Lookup(record, aliases...)
	if !ok {
		return 0
	}
	f, ok := numberValue(v)
	if !ok {
		return 0
	}
	return int64(f)
}

func LookupFloat(record map[string]any, aliases ...string) float64 {
	v, ok := Lookup(record, aliases...)
	if !ok {
		return 0
	}
	f, _ := numberValue(v)
	return f
}

// TeamName resolves the three known layouts for a team reference: a bare
// string, a flat {"name": ...} object, and a nested {"team": {"name": ...}}
// object.
func TeamName(v any) (string, error) {
	switch t := v.(type) {
	case string:
		name := strings.TrimSpace(t)
		if name == "" {
			return "", crerr.Wrap(ErrUnrecognizedShape, "empty team string")
		}
		return name, nil
	case map[string]any:
		if nested, ok := t["team"].(map[string]any); ok {
			if name := LookupString(nested, "name", "teamName", "teamSName"); name != "" {
				return name, nil
			}
		}
		if name := LookupString(t, "name", "teamName", "teamSName"); name != "" {
			return name, nil
		}
	}
	return "", crerr.Wrapf(ErrUnrecognizedShape, "team reference %T", v)
}

// TeamIsWinner reports whether a team reference carries the provider's
// isWinner marker. The flag arrives as a bool, a number or a string depending
// on the endpoint, and may sit on the wrapper or the inner team object.
func TeamIsWinner(v any) bool {
	record, ok := v.(map[string]any)
	if !ok {
		return false
	}
	switch flag := record["isWinner"].(type) {
	case bool:
		return flag
	case float64:
		return flag != 0
	case string:
		return strings.EqualFold(flag, "true") || flag == "1"
	}
	if inner, ok := record["team"].(map[string]any); ok {
		return TeamIsWinner(inner)
	}
	return false
}

// formatPreference orders the stat-grid columns worth reading when a player
// has figures for several formats. One-day figures are the most comparable
// across the player pool, so they win.
var formatPreference = []string{
	"ODI", "ODIs", "One Day",
	"T20I", "T20",
	"TESTS", "TEST", "Tests", "Test",
	"IPL",
}

const rowHeaderLabel = "rowheader"

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ResolveFormatColumn picks the column index of the preferred format in a
// stats-grid header row, skipping the row-label column. When no preferred
// format is present it falls back to the first non-label column; -1 means the
// grid is unusable.
func ResolveFormatColumn(headers []string) int {
	if len(headers) == 0 {
		return -1
	}

	for _, format := range formatPreference {
		for i, header := range headers {
			label := strings.TrimSpace(header)
			if strings.EqualFold(label, rowHeaderLabel) {
				continue
			}
			// Exact or substring either way, so "ODI Matches" still
			// resolves as ODI.
			if strings.EqualFold(label, format) || containsFold(label, format) || containsFold(format, label) {
				return i
			}
		}
	}

	for i, header := range headers {
		if !strings.EqualFold(strings.TrimSpace(header), rowHeaderLabel) {
			return i
		}
	}
	return -1
}

// StatsGrid is the tabular batting/bowling summary layout: one header row of
// format labels plus value rows led by a metric label.
type StatsGrid struct {
	Headers []string
	Rows    [][]string
}

// ParseStatsGrid reads the {"headers": [...], "values": [{"values": [...]}]}
// layout. Missing pieces produce an empty grid rather than an error; many
// players simply have no figures for a format.
func ParseStatsGrid(payload map[string]any) StatsGrid {
	grid := StatsGrid{}
	if payload == nil {
		return grid
	}

	if rawHeaders, ok := payload["headers"].([]any); ok {
		grid.Headers = make([]string, 0, len(rawHeaders))
		for _, h := range rawHeaders {
			grid.Headers = append(grid.Headers, stringValue(h))
		}
	}

	rawRows, ok := payload["values"].([]any)
	if !ok {
		return grid
	}
	grid.Rows = make([][]string, 0, len(rawRows))
	for _, rawRow := range rawRows {
		rowMap, ok := rawRow.(map[string]any)
		if !ok {
			continue
		}
		cells, ok := rowMap["values"].([]any)
		if !ok {
			continue
		}
		row := make([]string, 0, len(cells))
		for _, cell := range cells {
			row = append(row, stringValue(cell))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// Metric returns the preferred-format value for the row whose label matches
// the metric name (case-insensitive exact match). Empty grid or missing
// metric yields "".
func (g StatsGrid) Metric(metric string) string {
	col := ResolveFormatColumn(g.Headers)
	if col < 0 {
		return ""
	}
	for _, row := range g.Rows {
		if len(row) == 0 {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(row[0]), metric) {
			continue
		}
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}
	return ""
}

// Formats lists the non-label header columns, preserving grid order.
func (g StatsGrid) Formats() []string {
	out := make([]string, 0, len(g.Headers))
	for _, header := range g.Headers {
		label := strings.TrimSpace(header)
		if label == "" || strings.EqualFold(label, rowHeaderLabel) {
			continue
		}
		out = append(out, label)
	}
	return out
}

// MetricForColumn is Metric with an explicit column index, used when walking
// every format column of a grid.
func (g StatsGrid) MetricForColumn(metric string, col int) string {
	if col < 0 {
		return ""
	}
	for _, row := range g.Rows {
		if len(row) == 0 || !strings.EqualFold(strings.TrimSpace(row[0]), metric) {
			continue
		}
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}
	return ""
}

// ColumnForFormat returns the header index of an exact format label, -1 when
// absent.
func (g StatsGrid) ColumnForFormat(format string) int {
	for i, header := range g.Headers {
		if strings.EqualFold(strings.TrimSpace(header), format) {
			return i
		}
	}
	return -1
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ParseNumber extracts the first numeric substring from human-formatted
// figures like "1,234 runs" or "45%".
func ParseNumber(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	matched := numberPattern.FindString(cleaned)
	if matched == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(matched, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseInt is ParseNumber truncated to an integer.
func ParseInt(s string) (int64, bool) {
	f, ok := ParseNumber(s)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func numberValue(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		return ParseNumber(t)
	default:
		return 0, false
	}
}
