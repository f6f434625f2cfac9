package match

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	StatusUpcoming  = "upcoming"
	StatusLive      = "live"
	StatusCompleted = "completed"
)

// startTimeLayout keeps stored timestamps lexicographically sortable, which
// the canned date-range queries rely on.
const startTimeLayout = "2006-01-02 15:04:05"

type Match struct {
	MatchID       string
	SeriesID      string
	SeriesName    string
	Format        string
	Team1         string
	Team2         string
	Venue         string
	City          string
	VenueCountry  string
	StartTime     string
	Status        string
	Winner        string
	VictoryMargin int64
	VictoryType   string
	TossWinner    string
	TossDecision  string
}

var completedKeywords = []string{
	" won by ",
	"won the match",
	"match tied",
	"no result",
	"draw",
	"abandoned",
}

var liveKeywords = []string{
	"live",
	"stumps",
	"innings break",
	"drinks",
}

// NormalizeStatus maps free-text provider status into one of the three
// lifecycle buckets. Completed keywords are checked first so strings like
// "India won by 23 runs" never misread as live.
func NormalizeStatus(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return StatusUpcoming
	}
	for _, kw := range completedKeywords {
		if strings.Contains(text, kw) {
			return StatusCompleted
		}
	}
	for _, kw := range liveKeywords {
		if strings.Contains(text, kw) {
			return StatusLive
		}
	}
	return StatusUpcoming
}

var marginPattern = regexp.MustCompile(`(?i)won by\s+(\d+)\s+(runs?|wickets?)`)

// ParseVictoryMargin extracts the margin and its unit from a result string
// like "India won by 23 runs". The unit is normalized to plural form.
func ParseVictoryMargin(status string) (int64, string, bool) {
	m := marginPattern.FindStringSubmatch(status)
	if m == nil {
		return 0, "", false
	}
	margin, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, "", false
	}
	unit := strings.ToLower(m[2])
	if !strings.HasSuffix(unit, "s") {
		unit += "s"
	}
	return margin, unit, true
}

// StartTimeFromEpoch renders a provider epoch as a UTC timestamp string.
// Values beyond ~2033 in seconds are treated as milliseconds; values still
// out of range after that conversion are rejected as garbage.
func StartTimeFromEpoch(epoch int64) (string, bool) {
	if epoch <= 0 {
		return "", false
	}
	if epoch > 2_000_000_000 {
		epoch /= 1000
	}
	if epoch > 2_000_000_000 {
		return "", false
	}
	return time.Unix(epoch, 0).UTC().Format(startTimeLayout), true
}
