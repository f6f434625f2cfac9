package match

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"India won by 23 runs", StatusCompleted},
		{"Australia won the match", StatusCompleted},
		{"Match tied", StatusCompleted},
		{"No result due to rain", StatusCompleted},
		{"Match drawn", StatusCompleted},
		{"Match abandoned without a ball bowled", StatusCompleted},
		{"Match in progress, Stumps", StatusLive},
		{"Live", StatusLive},
		{"Innings Break", StatusLive},
		{"Drinks break", StatusLive},
		{"Starts at 14:00 GMT", StatusUpcoming},
		{"", StatusUpcoming},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := NormalizeStatus(tc.raw); got != tc.want {
				t.Fatalf("NormalizeStatus(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseVictoryMargin(t *testing.T) {
	t.Run("runs", func(t *testing.T) {
		margin, unit, ok := ParseVictoryMargin("India won by 23 runs")
		if !ok || margin != 23 || unit != "runs" {
			t.Fatalf("unexpected result: %d %q %v", margin, unit, ok)
		}
	})

	t.Run("singular wicket", func(t *testing.T) {
		margin, unit, ok := ParseVictoryMargin("England won by 1 wicket")
		if !ok || margin != 1 || unit != "wickets" {
			t.Fatalf("unexpected result: %d %q %v", margin, unit, ok)
		}
	})

	t.Run("no margin", func(t *testing.T) {
		if _, _, ok := ParseVictoryMargin("Match tied"); ok {
			t.Fatalf("expected no margin for tied match")
		}
	})
}

func TestStartTimeFromEpoch(t *testing.T) {
	t.Run("milliseconds", func(t *testing.T) {
		got, ok := StartTimeFromEpoch(1700000000000)
		if !ok {
			t.Fatalf("expected valid timestamp")
		}
		if got != "2023-11-14 22:13:20" {
			t.Fatalf("unexpected timestamp: %q", got)
		}
	})

	t.Run("seconds", func(t *testing.T) {
		got, ok := StartTimeFromEpoch(1700000000)
		if !ok || got != "2023-11-14 22:13:20" {
			t.Fatalf("unexpected timestamp: %q ok=%v", got, ok)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if _, ok := StartTimeFromEpoch(3_000_000_000_000_000); ok {
			t.Fatalf("expected rejection for out-of-range epoch")
		}
	})

	t.Run("non positive", func(t *testing.T) {
		if _, ok := StartTimeFromEpoch(0); ok {
			t.Fatalf("expected rejection for zero epoch")
		}
	})
}
