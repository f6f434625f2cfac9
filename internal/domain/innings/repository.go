package innings

import "context"

type Repository interface {
	// ReplaceForMatch deletes any previous innings detail for the match and
	// writes the freshly extracted rows in one transaction.
	ReplaceForMatch(ctx context.Context, matchID string, batting []BattingEntry, bowling []BowlingEntry, partnerships []Partnership) error
}
