package booking

import (
	"fmt"
	"strings"
	"time"
)

// The bookable grid is fixed: one slot per integer hour from 04:00 through
// 22:00 inclusive, 19 slots total.
const (
	gridStartHour = 4
	gridEndHour   = 22
)

type Slot struct {
	Time        string `json:"time" example:"14:00"`
	DisplayTime string `json:"displayTime" example:"2:00 PM"`
	IsBooked    bool   `json:"isBooked"`
	IsAvailable bool   `json:"isAvailable"`
}

type SlotGrid struct {
	Available bool   `json:"available"`
	Day       string `json:"day,omitempty"`
	Message   string `json:"message,omitempty"`
	TimeSlots []Slot `json:"timeSlots"`
}

// SplitDays breaks a stored availability value into trimmed day names.
// Values are not validated against a weekday list; whatever the trainer
// stored is accepted.
func SplitDays(daysCsv string) []string {
	parts := strings.Split(daysCsv, ",")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			days = append(days, trimmed)
		}
	}
	return days
}

// MatchDay tests case-insensitive membership and returns the day in the
// exact casing it was stored with, for use in subsequent ledger queries.
func MatchDay(days []string, day string) (string, bool) {
	for _, d := range days {
		if strings.EqualFold(d, day) {
			return d, true
		}
	}
	return "", false
}

var timeLayouts = []string{"15:04:05", "15:04"}

// NormalizeSlotTime reduces a stored time-of-day value to its HH:MM key.
// Seconds are discarded: bookings are treated as hour/minute granularity.
func NormalizeSlotTime(value string) (string, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", fmt.Errorf("unparseable time value %q", value)
}

// ParseBookingTime validates a requested booking time (HH:MM or HH:MM:SS)
// and returns the canonical HH:MM:SS form used for storage and exact-match
// conflict checks.
func ParseBookingTime(value string) (string, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("invalid booking time format: %s. Use HH:MM or HH:MM:SS format", value)
}

// AddHour returns the time one hour after a canonical HH:MM:SS value,
// wrapping at midnight. Used for the facility-usage window.
func AddHour(value string) string {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return value
	}
	return t.Add(time.Hour).Format("15:04:05")
}

// BookedSet normalizes a list of stored booking times into the HH:MM keys the
// grid is checked against. Malformed values are skipped and returned so the
// caller can log them; a corrupt row must not block the whole day's grid.
func BookedSet(times []string) (map[string]bool, []string) {
	booked := make(map[string]bool, len(times))
	var skipped []string
	for _, raw := range times {
		key, err := NormalizeSlotTime(raw)
		if err != nil {
			skipped = append(skipped, raw)
			continue
		}
		booked[key] = true
	}
	return booked, skipped
}

// BuildGrid produces the fixed 19-slot hourly grid, marking each slot against
// the booked set. Slots are strictly ascending.
func BuildGrid(booked map[string]bool) []Slot {
	slots := make([]Slot, 0, gridEndHour-gridStartHour+1)
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		key := fmt.Sprintf("%02d:00", hour)
		isBooked := booked[key]

		displayHour := hour
		if hour > 12 {
			displayHour = hour - 12
		} else if hour == 0 {
			displayHour = 12
		}
		amPm := "AM"
		if hour >= 12 {
			amPm = "PM"
		}

		slots = append(slots, Slot{
			Time:        key,
			DisplayTime: fmt.Sprintf("%d:00 %s", displayHour, amPm),
			IsBooked:    isBooked,
			IsAvailable: !isBooked,
		})
	}
	return slots
}
