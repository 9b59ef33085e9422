package service

// DutySlots are the four classified positions of one duty day.
type DutySlots struct {
	CheckIn  string
	BreakOut string
	BreakIn  string
	CheckOut string
}

// ClassifySlots buckets one day's punches (sorted ascending by time) into
// duty slots with a single left-to-right scan:
//
//   - hour 5–11: check-in, first qualifying punch only
//   - hour 12: break-out first, then break-in, each set once
//   - hour 13–21: check-out, overwritten by every qualifying punch so the
//     last badge-out of the day wins
//   - hours 0–4 and 22–23: not assigned to any slot
//
// The check-out slot is deliberately last-fit while the other three are
// first-fit: staff often badge several times around end of shift and the
// final one is the real departure. Do not unify the rules.
func ClassifySlots(logs []Punch) DutySlots {
	var slots DutySlots
	for _, log := range logs {
		switch {
		case log.Hour24 >= 5 && log.Hour24 <= 11:
			if slots.CheckIn == "" {
				slots.CheckIn = log.Time24
			}
		case log.Hour24 == 12:
			if slots.BreakOut == "" {
				slots.BreakOut = log.Time24
			} else if slots.BreakIn == "" {
				slots.BreakIn = log.Time24
			}
		case log.Hour24 >= 13 && log.Hour24 <= 21:
			slots.CheckOut = log.Time24
		}
	}
	return slots
}
