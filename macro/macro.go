package macro

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Goals holds the daily calorie and protein targets. Goals are read by the
// tools but never written; editing them is done directly in the repository.
type Goals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
}

// FoodEntry is one logged food intake record.
type FoodEntry struct {
	// ID is a stable identifier assigned when the entry is created.
	// External addressing remains positional; the ID exists so a caller
	// can recognize an entry after concurrent edits shift indexes.
	ID          string  `json:"id,omitempty"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
}

// DayLog holds all entries for a single calendar date.
// Entries stay in append order, not time-of-day order.
type DayLog struct {
	Date    string      `json:"date"`
	Entries []FoodEntry `json:"entries"`
}

// Totals sums the calories and protein recorded for the day.
func (d DayLog) Totals() (calories int, protein float64) {
	for _, e := range d.Entries {
		calories += e.Calories
		protein += e.Protein
	}
	return calories, protein
}

// Data is the root document persisted as the entire content of the remote
// file. Log is sorted descending by date string.
type Data struct {
	Goals Goals    `json:"goals"`
	Log   []DayLog `json:"log"`
}

// dayIndex returns the position of the DayLog for date, or -1.
func (d *Data) dayIndex(date string) int {
	for i, day := range d.Log {
		if day.Date == date {
			return i
		}
	}
	return -1
}

// Day returns the DayLog for the given date.
func (d *Data) Day(date string) (DayLog, bool) {
	if i := d.dayIndex(date); i >= 0 {
		return d.Log[i], true
	}
	return DayLog{}, false
}

// AddEntry appends entry to the DayLog for date, creating the DayLog if the
// date is new. New entries always go last regardless of their time value.
// When a DayLog is created the log is re-sorted descending by date. An ID is
// assigned if the entry does not carry one. Returns the stored entry.
func (d *Data) AddEntry(date string, entry FoodEntry) FoodEntry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if i := d.dayIndex(date); i >= 0 {
		d.Log[i].Entries = append(d.Log[i].Entries, entry)
		return entry
	}

	d.Log = append(d.Log, DayLog{Date: date, Entries: []FoodEntry{entry}})
	sort.Slice(d.Log, func(i, j int) bool {
		return d.Log[i].Date > d.Log[j].Date
	})
	return entry
}

// EntryPatch holds the optional fields of an update. Nil fields keep the
// entry's prior value.
type EntryPatch struct {
	Time        *string
	Description *string
	Calories    *int
	Protein     *float64
}

// UpdateEntry overwrites the supplied fields of the entry at (date, index)
// in place and returns the fully updated entry.
func (d *Data) UpdateEntry(date string, index int, patch EntryPatch) (FoodEntry, error) {
	di := d.dayIndex(date)
	if di < 0 {
		return FoodEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, date)
	}
	if index < 0 || index >= len(d.Log[di].Entries) {
		return FoodEntry{}, fmt.Errorf("%w: index %d, %d entries for %s",
			ErrIndexOutOfRange, index, len(d.Log[di].Entries), date)
	}

	entry := &d.Log[di].Entries[index]
	if patch.Time != nil {
		entry.Time = *patch.Time
	}
	if patch.Description != nil {
		entry.Description = *patch.Description
	}
	if patch.Calories != nil {
		entry.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		entry.Protein = *patch.Protein
	}
	return *entry, nil
}

// DeleteEntry removes the entry at (date, index); later entries shift down
// by one. A DayLog emptied by the removal is dropped from the log entirely.
// Returns the deleted entry's prior values.
func (d *Data) DeleteEntry(date string, index int) (FoodEntry, error) {
	di := d.dayIndex(date)
	if di < 0 {
		return FoodEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, date)
	}
	entries := d.Log[di].Entries
	if index < 0 || index >= len(entries) {
		return FoodEntry{}, fmt.Errorf("%w: index %d, %d entries for %s",
			ErrIndexOutOfRange, index, len(entries), date)
	}

	deleted := entries[index]
	d.Log[di].Entries = append(entries[:index], entries[index+1:]...)
	if len(d.Log[di].Entries) == 0 {
		d.Log = append(d.Log[:di], d.Log[di+1:]...)
	}
	return deleted, nil
}
