package player

const (
	RoleBatter     = "Batter"
	RoleBowler     = "Bowler"
	RoleAllRounder = "All-rounder"
)

// Player is the aggregate row keyed on (Name, Country).
type Player struct {
	ID             int64
	Name           string
	Country        string
	Role           string
	BattingStyle   string
	BowlingStyle   string
	TotalRuns      int64
	BattingAverage float64
	StrikeRate     float64
	TotalWickets   int64
	BowlingAverage float64
	EconomyRate    float64
	Catches        int64
	Stumpings      int64
}

// FormatStats is one row of per-format figures for a player, keyed on
// (PlayerName, Format).
type FormatStats struct {
	PlayerName     string
	Format         string
	Matches        int64
	Runs           int64
	Average        float64
	StrikeRate     float64
	Hundreds       int64
	Fifties        int64
	Wickets        int64
	BowlingAverage float64
	Economy        float64
}

// ClassifyRole derives a coarse role from career aggregates. A player with
// both wickets and runs is an all-rounder; wickets alone make a bowler;
// everyone else, including players with no figures at all, is a batter.
func ClassifyRole(totalRuns, totalWickets int64) string {
	switch {
	case totalWickets > 0 && totalRuns > 0:
		return RoleAllRounder
	case totalWickets > 0:
		return RoleBowler
	default:
		return RoleBatter
	}
}
