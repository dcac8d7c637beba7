package schedule

// ShowDefinition is one static weekly programming entry. The same show name
// can appear in several definitions when it airs under different hosts on
// different days.
type ShowDefinition struct {
	Name        string
	Host        string
	Window      Window
	Days        []Weekday
	Description string

	// image asset name, resolved by the UI shell
	Image string
}

// ID is the direct show id: "<name>-<display window>".
func (s ShowDefinition) ID() string {
	return s.Name + "-" + s.Window.String()
}

func (s ShowDefinition) airsOn(day Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Resolved is a ShowDefinition situated in actual time, carrying the derived
// id and display time label the UI needs. It is always displayable; absence
// of programming resolves to OffAir(), never to a nil value.
type Resolved struct {
	ID          string
	Name        string
	Host        string
	Time        string
	Days        string
	Description string
	Image       string
}

func (s ShowDefinition) resolved(id string, timeLabel string) Resolved {
	return Resolved{
		ID:          id,
		Name:        s.Name,
		Host:        s.Host,
		Time:        timeLabel,
		Days:        FormatDays(s.Days),
		Description: s.Description,
		Image:       s.Image,
	}
}

// OffAir is the fallback show returned whenever no scheduled show covers the
// current instant.
func OffAir() Resolved {
	return Resolved{
		ID:          "Off Studio-24/7",
		Name:        "Off Studio",
		Host:        "With our Amazing DJs",
		Time:        "24/7",
		Days:        "All Days",
		Description: "Continuous music and entertainment featuring the best mix of music from our talented DJs when regular shows are off air. Stay tuned for an uninterrupted flow of great music!",
		Image:       "default.png",
	}
}
