package innings

import (
	"math"
	"sort"
)

// PartnershipThreshold is the minimum combined runs for an adjacent pair of
// batters to be recorded as a notable partnership. Adjacent batting positions
// are a proxy for actual time at the crease together; the scorecard feed does
// not expose true partnership data.
const PartnershipThreshold = 50

type BattingEntry struct {
	MatchID    string
	InningsNo  int64
	Team       string
	PlayerID   string
	PlayerName string
	Position   int64
	Runs       int64
	Balls      int64
	StrikeRate float64
}

type BowlingEntry struct {
	MatchID      string
	InningsNo    int64
	Team         string
	PlayerID     string
	PlayerName   string
	Overs        float64
	Balls        int64
	RunsConceded int64
	Wickets      int64
	Economy      float64
}

type Partnership struct {
	MatchID     string
	InningsNo   int64
	Team        string
	Player1Name string
	Player2Name string
	Runs        int64
}

// OversToBalls converts cricket's non-decimal over notation: the fractional
// digit counts balls into the current over, so 4.2 overs is 26 balls, not 25.2.
func OversToBalls(overs float64) int64 {
	if overs <= 0 {
		return 0
	}
	whole := int64(overs)
	balls := int64(math.Round((overs - float64(whole)) * 10))
	return whole*6 + balls
}

// BuildPartnerships pairs adjacent batting positions within each innings and
// keeps pairs whose combined runs reach the threshold.
func BuildPartnerships(entries []BattingEntry, threshold int64) []Partnership {
	byInnings := make(map[int64][]BattingEntry)
	order := make([]int64, 0, 4)
	for _, e := range entries {
		if _, seen := byInnings[e.InningsNo]; !seen {
			order = append(order, e.InningsNo)
		}
		byInnings[e.InningsNo] = append(byInnings[e.InningsNo], e)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	var out []Partnership
	for _, inningsNo := range order {
		batters := byInnings[inningsNo]
		sort.SliceStable(batters, func(i, j int) bool { return batters[i].Position < batters[j].Position })
		for i := 0; i+1 < len(batters); i++ {
			combined := batters[i].Runs + batters[i+1].Runs
			if combined < threshold {
				continue
			}
			out = append(out, Partnership{
				MatchID:     batters[i].MatchID,
				InningsNo:   inningsNo,
				Team:        batters[i].Team,
				Player1Name: batters[i].PlayerName,
				Player2Name: batters[i+1].PlayerName,
				Runs:        combined,
			})
		}
	}
	return out
}
