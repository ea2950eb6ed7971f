package models

type Sport string

const (
	SportTennis        Sport = "tennis"
	SportBadminton     Sport = "badminton"
	SportWeightlifting Sport = "weightlifting"
	SportPickleball    Sport = "pickleball"
)

func (s Sport) Valid() bool {
	switch s {
	case SportTennis, SportBadminton, SportWeightlifting, SportPickleball:
		return true
	}
	return false
}

type Event struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Sport          Sport  `json:"sport"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Location       string `json:"location"`
	AvailableSpots int    `json:"availableSpots"`
	MaxSpots       int    `json:"maxSpots"`
	Description    string `json:"description"`
}

// SeedEvents returns the four demo events loaded on first run.
func SeedEvents() []Event {
	return []Event{
		{
			ID:             1,
			Title:          "Tennis Beginner Class",
			Sport:          SportTennis,
			Date:           "2024-08-15",
			Time:           "10:00 AM",
			Location:       "Court 1",
			AvailableSpots: 8,
			MaxSpots:       10,
			Description:    "Perfect for beginners looking to learn tennis basics",
		},
		{
			ID:             2,
			Title:          "Badminton Tournament",
			Sport:          SportBadminton,
			Date:           "2024-08-18",
			Time:           "2:00 PM",
			Location:       "Indoor Court A",
			AvailableSpots: 4,
			MaxSpots:       16,
			Description:    "Monthly tournament for all skill levels",
		},
		{
			ID:             3,
			Title:          "Weight Lifting Workshop",
			Sport:          SportWeightlifting,
			Date:           "2024-08-20",
			Time:           "6:00 PM",
			Location:       "Gym Floor",
			AvailableSpots: 12,
			MaxSpots:       15,
			Description:    "Learn proper form and technique",
		},
		{
			ID:             4,
			Title:          "Pickleball Social Hour",
			Sport:          SportPickleball,
			Date:           "2024-08-22",
			Time:           "7:00 PM",
			Location:       "Court 2",
			AvailableSpots: 6,
			MaxSpots:       12,
			Description:    "Casual games and socializing",
		},
	}
}
