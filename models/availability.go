package models

import "errors"

var (
	ErrNoSchedule = errors.New("no availability for the selected day")
	ErrHourTaken  = errors.New("time slot is not available")
)

// ClaimHour removes every copy of hour from the entry for day. A day whose
// hours run out is dropped from the schedule. The input slice is not modified.
func ClaimHour(schedule []DaySchedule, day, hour string) ([]DaySchedule, error) {
	idx := -1
	for i, s := range schedule {
		if s.Day == day {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNoSchedule
	}

	remaining := make([]string, 0, len(schedule[idx].Hours))
	found := false
	for _, h := range schedule[idx].Hours {
		if h == hour {
			found = true
			continue
		}
		remaining = append(remaining, h)
	}
	if !found {
		return nil, ErrHourTaken
	}

	out := make([]DaySchedule, 0, len(schedule))
	for i, s := range schedule {
		if i != idx {
			out = append(out, s)
			continue
		}
		if len(remaining) > 0 {
			out = append(out, DaySchedule{Day: s.Day, Hours: remaining})
		}
	}
	return out, nil
}

// ReleaseHour puts hour back on day, recreating the day entry if it was dropped.
func ReleaseHour(schedule []DaySchedule, day, hour string) []DaySchedule {
	out := make([]DaySchedule, 0, len(schedule)+1)
	restored := false
	for _, s := range schedule {
		if s.Day == day {
			restored = true
			hours := append([]string{}, s.Hours...)
			if !contains(hours, hour) {
				hours = append(hours, hour)
			}
			out = append(out, DaySchedule{Day: s.Day, Hours: hours})
			continue
		}
		out = append(out, s)
	}
	if !restored {
		out = append(out, DaySchedule{Day: day, Hours: []string{hour}})
	}
	return out
}

func ToOpenSlots(schedule []DaySchedule) []OpenSlots {
	slots := make([]OpenSlots, 0, len(schedule))
	for _, s := range schedule {
		slots = append(slots, OpenSlots{Day: s.Day, Times: s.Hours})
	}
	return slots
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
