package models

// Boost is a boost-shop catalog entry. The shop is display-only; there is no
// purchase flow.
type Boost struct {
	ID       int
	Name     string
	Duration string
	Price    int64
}

// BoostCatalog returns the static boost shop contents.
func BoostCatalog() []Boost {
	return []Boost{
		{ID: 1, Name: "Boost 1", Duration: "1 hour", Price: 10},
		{ID: 2, Name: "Boost 2", Duration: "2 hours", Price: 20},
		{ID: 3, Name: "Boost 3", Duration: "3 hours", Price: 30},
		{ID: 4, Name: "Boost 4", Duration: "4 hours", Price: 40},
		{ID: 5, Name: "Boost 5", Duration: "5 hours", Price: 50},
	}
}

// EarnOptions returns the static "earn money" offerings.
func EarnOptions() []string {
	return []string{"Watch Ads", "Complete Surveys", "Play Games"}
}
