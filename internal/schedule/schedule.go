package schedule

import (
	"fmt"
	"time"
)

type DaySchedule struct {
	// WorkoutIndex is an index into the effective program, -1 for a rest day.
	WorkoutIndex int  `json:"workoutIndex"`
	Enabled      bool `json:"enabled"`
}

// WeekSchedule assigns a DaySchedule to each of the 7 weekdays. The JSON
// shape is keyed by weekday name, matching the persisted blob.
type WeekSchedule struct {
	Sunday    DaySchedule `json:"sunday"`
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
}

// DefaultWeekSchedule mirrors the built-in 4 day split:
// Monday through Thursday enabled with indices 0-3, the rest disabled.
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Sunday:    DaySchedule{WorkoutIndex: -1, Enabled: false},
		Monday:    DaySchedule{WorkoutIndex: 0, Enabled: true},
		Tuesday:   DaySchedule{WorkoutIndex: 1, Enabled: true},
		Wednesday: DaySchedule{WorkoutIndex: 2, Enabled: true},
		Thursday:  DaySchedule{WorkoutIndex: 3, Enabled: true},
		Friday:    DaySchedule{WorkoutIndex: -1, Enabled: false},
		Saturday:  DaySchedule{WorkoutIndex: -1, Enabled: false},
	}
}

func (ws WeekSchedule) Day(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Sunday:
		return ws.Sunday
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	}
	return DaySchedule{WorkoutIndex: -1, Enabled: false}
}

func (ws *WeekSchedule) SetDay(weekday time.Weekday, day DaySchedule) error {
	switch weekday {
	case time.Sunday:
		ws.Sunday = day
	case time.Monday:
		ws.Monday = day
	case time.Tuesday:
		ws.Tuesday = day
	case time.Wednesday:
		ws.Wednesday = day
	case time.Thursday:
		ws.Thursday = day
	case time.Friday:
		ws.Friday = day
	case time.Saturday:
		ws.Saturday = day
	default:
		return fmt.Errorf("invalid weekday: %d", weekday)
	}
	return nil
}

// ParseWeekday maps a lowercase weekday name to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	switch name {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday: %s", name)
}
