package models

// DateLayout is the calendar date format used for package start and end dates.
const DateLayout = "2006-01-02"

type ItineraryDay struct {
	ID          string `json:"id"`
	DayNumber   int    `json:"dayNumber"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type ItineraryPackage struct {
	ID        string         `json:"id"`
	StartDate string         `json:"startDate"`
	EndDate   string         `json:"endDate"`
	Days      []ItineraryDay `json:"days"`
	IsActive  bool           `json:"isActive"`
}

// Clone returns a copy that shares no day storage with p.
func (p ItineraryPackage) Clone() ItineraryPackage {
	c := p
	if p.Days != nil {
		c.Days = make([]ItineraryDay, len(p.Days))
		copy(c.Days, p.Days)
	}
	return c
}
