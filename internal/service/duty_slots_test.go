package service

import "testing"

func punches(times ...string) []Punch {
	logs := make([]Punch, 0, len(times))
	for _, t24 := range times {
		hour := int(t24[0]-'0')*10 + int(t24[1]-'0')
		logs = append(logs, Punch{Time24: t24, Hour24: hour})
	}
	return logs
}

func TestClassifySlotsFullDay(t *testing.T) {
	slots := ClassifySlots(punches("08:00", "12:05", "12:45", "17:00", "20:30"))

	if slots.CheckIn != "08:00" {
		t.Errorf("CheckIn = %q, want 08:00", slots.CheckIn)
	}
	if slots.BreakOut != "12:05" {
		t.Errorf("BreakOut = %q, want 12:05", slots.BreakOut)
	}
	if slots.BreakIn != "12:45" {
		t.Errorf("BreakIn = %q, want 12:45", slots.BreakIn)
	}
	// Last badge-out wins.
	if slots.CheckOut != "20:30" {
		t.Errorf("CheckOut = %q, want 20:30", slots.CheckOut)
	}
}

func TestClassifySlotsCheckInFirstFit(t *testing.T) {
	slots := ClassifySlots(punches("06:00", "09:00"))

	if slots.CheckIn != "06:00" {
		t.Errorf("CheckIn = %q, want first morning punch 06:00", slots.CheckIn)
	}
	if slots.BreakOut != "" || slots.BreakIn != "" || slots.CheckOut != "" {
		t.Errorf("unexpected slots filled: %+v", slots)
	}
}

func TestClassifySlotsCheckOutLastFit(t *testing.T) {
	slots := ClassifySlots(punches("13:00", "18:00"))

	if slots.CheckOut != "18:00" {
		t.Errorf("CheckOut = %q, want last afternoon punch 18:00", slots.CheckOut)
	}
	if slots.CheckIn != "" {
		t.Errorf("CheckIn = %q, want empty", slots.CheckIn)
	}
}

func TestClassifySlotsNoonPairing(t *testing.T) {
	slots := ClassifySlots(punches("12:01", "12:30", "12:59"))

	if slots.BreakOut != "12:01" || slots.BreakIn != "12:30" {
		t.Errorf("break slots = %q/%q, want 12:01/12:30", slots.BreakOut, slots.BreakIn)
	}
}

func TestClassifySlotsIgnoresOffHours(t *testing.T) {
	slots := ClassifySlots(punches("02:15", "04:59", "22:00", "23:30"))

	if slots != (DutySlots{}) {
		t.Errorf("off-hours punches were assigned: %+v", slots)
	}
}

func TestClassifySlotsEmptyDay(t *testing.T) {
	if slots := ClassifySlots(nil); slots != (DutySlots{}) {
		t.Errorf("empty day produced slots: %+v", slots)
	}
}
