package venue

type Venue struct {
	VenueID  string
	Name     string
	City     string
	Country  string
	Capacity int64
}
