package cricbuzz

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// PlayerRef identifies a player well enough to fetch stat summaries.
type PlayerRef struct {
	ID      string
	Name    string
	Country string
}

// ExtractMatchInfos flattens the nested match-list payload
// (typeMatches -> seriesMatches -> seriesAdWrapper -> matches -> matchInfo)
// into flat matchInfo records. Flat layouts that skip the wrappers are also
// accepted.
func ExtractMatchInfos(payload map[string]any) []map[string]any {
	var out []map[string]any

	typeMatches, ok := payload["typeMatches"].([]any)
	if !ok {
		// Flat layout: a bare "matches" array at the top level.
		out = appendMatches(out, payload, "")
		return out
	}

	for _, rawType := range typeMatches {
		typeEntry, ok := rawType.(map[string]any)
		if !ok {
			continue
		}
		seriesMatches, ok := typeEntry["seriesMatches"].([]any)
		if !ok {
			continue
		}
		for _, rawSeries := range seriesMatches {
			seriesEntry, ok := rawSeries.(map[string]any)
			if !ok {
				continue
			}
			wrapper, ok := seriesEntry["seriesAdWrapper"].(map[string]any)
			if !ok {
				// Ad slots appear between series wrappers; some layouts
				// also inline the series fields without the wrapper.
				wrapper = seriesEntry
			}
			seriesName := LookupString(wrapper, "seriesName")
			out = appendMatches(out, wrapper, seriesName)
		}
	}
	return out
}

func appendMatches(out []map[string]any, container map[string]any, seriesName string) []map[string]any {
	matches, ok := container["matches"].([]any)
	if !ok {
		return out
	}
	for _, rawMatch := range matches {
		entry, ok := rawMatch.(map[string]any)
		if !ok {
			continue
		}
		info, ok := entry["matchInfo"].(map[string]any)
		if !ok {
			info = entry
		}
		if seriesName != "" {
			if _, exists := info["seriesName"]; !exists {
				info["seriesName"] = seriesName
			}
		}
		out = append(out, info)
	}
	return out
}

// InningsCard is one innings of a scorecard, with batting and bowling entries
// as loose records in batting/bowling order.
type InningsCard struct {
	InningsNo int64
	Team      string
	Batsmen   []map[string]any
	Bowlers   []map[string]any
}

// ExtractInnings reads both known scorecard layouts: the modern one with
// batTeamDetails/bowlTeamDetails keyed maps, and the legacy one with flat
// batsman/bowler arrays.
func ExtractInnings(payload map[string]any) []InningsCard {
	rawList, ok := payload["scoreCard"].([]any)
	if !ok {
		rawList, ok = payload["scorecard"].([]any)
	}
	if !ok {
		return nil
	}

	out := make([]InningsCard, 0, len(rawList))
	for i, rawInnings := range rawList {
		entry, ok := rawInnings.(map[string]any)
		if !ok {
			continue
		}
		card := InningsCard{
			InningsNo: LookupInt64(entry, "inningsId", "inningsNumber"),
		}
		if card.InningsNo <= 0 {
			card.InningsNo = int64(i + 1)
		}

		if batDetails, ok := entry["batTeamDetails"].(map[string]any); ok {
			card.Team = LookupString(batDetails, "batTeamName", "batTeamShortName")
			card.Batsmen = orderedRecords(batDetails["batsmenData"])
		}
		if card.Team == "" {
			card.Team = LookupString(entry, "batTeamName", "battingTeam", "batteam")
		}
		if len(card.Batsmen) == 0 {
			card.Batsmen = recordList(entry, "batsman", "batsmen")
		}

		if bowlDetails, ok := entry["bowlTeamDetails"].(map[string]any); ok {
			card.Bowlers = orderedRecords(bowlDetails["bowlersData"])
		}
		if len(card.Bowlers) == 0 {
			card.Bowlers = recordList(entry, "bowler", "bowlers")
		}

		if len(card.Batsmen) == 0 && len(card.Bowlers) == 0 {
			continue
		}
		out = append(out, card)
	}
	return out
}

var trailingDigits = regexp.MustCompile(`\d+$`)

// orderedRecords turns a keyed map like {"bat_1": {...}, "bat_2": {...}} into
// a slice sorted by the numeric key suffix, which preserves batting order.
func orderedRecords(v any) []map[string]any {
	keyed, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := keySuffix(keys[i])
		b, bok := keySuffix(keys[j])
		if aok && bok && a != b {
			return a < b
		}
		return keys[i] < keys[j]
	})

	out := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		if record, ok := keyed[key].(map[string]any); ok {
			out = append(out, record)
		}
	}
	return out
}

func keySuffix(key string) (int, bool) {
	match := trailingDigits.FindString(key)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	return n, true
}

func recordList(entry map[string]any, aliases ...string) []map[string]any {
	for _, alias := range aliases {
		rawList, ok := entry[alias].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(rawList))
		for _, raw := range rawList {
			if record, ok := raw.(map[string]any); ok {
				out = append(out, record)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// ExtractPlayerRefs reads trending/search player lists. Both the "player"
// array layout and a bare top-level list under "players" are accepted.
func ExtractPlayerRefs(payload map[string]any) []PlayerRef {
	rawList, ok := payload["player"].([]any)
	if !ok {
		rawList, ok = payload["players"].([]any)
	}
	if !ok {
		return nil
	}

	out := make([]PlayerRef, 0, len(rawList))
	for _, raw := range rawList {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		ref := PlayerRef{
			ID:      LookupString(record, "id", "playerId"),
			Name:    strings.TrimSpace(LookupString(record, "name", "playerName", "fullName")),
			Country: strings.TrimSpace(LookupString(record, "teamName", "country", "intlTeam")),
		}
		if ref.ID == "" || ref.Name == "" {
			continue
		}
		out = append(out, ref)
	}
	return out
}
