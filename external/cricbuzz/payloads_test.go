package cricbuzz

import "testing"

func TestExtractMatchInfos_NestedLayout(t *testing.T) {
	payload := map[string]any{
		"typeMatches": []any{
			map[string]any{
				"matchType": "International",
				"seriesMatches": []any{
					map[string]any{
						"seriesAdWrapper": map[string]any{
							"seriesName": "India tour of Australia",
							"matches": []any{
								map[string]any{
									"matchInfo": map[string]any{
										"matchId": float64(1001),
										"status":  "India won by 23 runs",
									},
								},
							},
						},
					},
					map[string]any{"adDetail": map[string]any{}},
				},
			},
		},
	}

	infos := ExtractMatchInfos(payload)
	if len(infos) != 1 {
		t.Fatalf("unexpected match count: %d", len(infos))
	}
	if got := LookupString(infos[0], "status"); got != "India won by 23 runs" {
		t.Fatalf("unexpected status: %q", got)
	}
	if got := LookupString(infos[0], "seriesName"); got != "India tour of Australia" {
		t.Fatalf("series name not propagated: %q", got)
	}
}

func TestExtractMatchInfos_FlatLayout(t *testing.T) {
	payload := map[string]any{
		"matches": []any{
			map[string]any{"matchId": float64(7), "status": "Live"},
		},
	}

	infos := ExtractMatchInfos(payload)
	if len(infos) != 1 {
		t.Fatalf("unexpected match count: %d", len(infos))
	}
	if got := LookupInt64(infos[0], "matchId"); got != 7 {
		t.Fatalf("unexpected match id: %d", got)
	}
}

func TestExtractInnings_ModernLayout(t *testing.T) {
	payload := map[string]any{
		"scoreCard": []any{
			map[string]any{
				"inningsId": float64(1),
				"batTeamDetails": map[string]any{
					"batTeamName": "India",
					"batsmenData": map[string]any{
						"bat_2":  map[string]any{"batName": "Gill", "runs": float64(15)},
						"bat_1":  map[string]any{"batName": "Rohit", "runs": float64(40)},
						"bat_10": map[string]any{"batName": "Bumrah", "runs": float64(2)},
					},
				},
				"bowlTeamDetails": map[string]any{
					"bowlersData": map[string]any{
						"bowl_1": map[string]any{"bowlName": "Starc", "overs": "10.0", "wickets": float64(2)},
					},
				},
			},
		},
	}

	cards := ExtractInnings(payload)
	if len(cards) != 1 {
		t.Fatalf("unexpected innings count: %d", len(cards))
	}
	card := cards[0]
	if card.InningsNo != 1 || card.Team != "India" {
		t.Fatalf("unexpected card header: %+v", card)
	}
	if len(card.Batsmen) != 3 {
		t.Fatalf("unexpected batsman count: %d", len(card.Batsmen))
	}
	// Numeric key suffixes define batting order, so bat_10 sorts last.
	if LookupString(card.Batsmen[0], "batName") != "Rohit" ||
		LookupString(card.Batsmen[1], "batName") != "Gill" ||
		LookupString(card.Batsmen[2], "batName") != "Bumrah" {
		t.Fatalf("unexpected batting order: %+v", card.Batsmen)
	}
	if len(card.Bowlers) != 1 || LookupString(card.Bowlers[0], "bowlName") != "Starc" {
		t.Fatalf("unexpected bowlers: %+v", card.Bowlers)
	}
}

func TestExtractInnings_LegacyLayout(t *testing.T) {
	payload := map[string]any{
		"scorecard": []any{
			map[string]any{
				"batTeamName": "Australia",
				"batsman": []any{
					map[string]any{"name": "Head", "runs": "72"},
				},
				"bowler": []any{
					map[string]any{"name": "Siraj", "overs": "8.3"},
				},
			},
		},
	}

	cards := ExtractInnings(payload)
	if len(cards) != 1 {
		t.Fatalf("unexpected innings count: %d", len(cards))
	}
	card := cards[0]
	if card.InningsNo != 1 || card.Team != "Australia" {
		t.Fatalf("unexpected card header: %+v", card)
	}
	if len(card.Batsmen) != 1 || len(card.Bowlers) != 1 {
		t.Fatalf("unexpected entry counts: %d/%d", len(card.Batsmen), len(card.Bowlers))
	}
}

func TestExtractInnings_NoScorecard(t *testing.T) {
	if cards := ExtractInnings(map[string]any{"status": "ok"}); cards != nil {
		t.Fatalf("expected nil for missing scorecard, got %+v", cards)
	}
}

func TestExtractPlayerRefs(t *testing.T) {
	payload := map[string]any{
		"player": []any{
			map[string]any{"id": "8733", "name": "KL Rahul", "teamName": "India"},
			map[string]any{"name": "No ID"},
			map[string]any{"id": "2258", "name": "Jos Buttler", "teamName": "England"},
		},
	}

	refs := ExtractPlayerRefs(payload)
	if len(refs) != 2 {
		t.Fatalf("unexpected ref count: %d", len(refs))
	}
	if refs[0].ID != "8733" || refs[0].Country != "India" {
		t.Fatalf("unexpected first ref: %+v", refs[0])
	}
}
