package series

type Series struct {
	SeriesID     string
	Name         string
	HostCountry  string
	Format       string
	StartDate    string
	TotalMatches int64
}
