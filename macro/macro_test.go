package macro

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func testData() *Data {
	return &Data{
		Goals: Goals{Calories: 2000, Protein: 150},
		Log:   []DayLog{},
	}
}

func TestAddEntry_NewDate(t *testing.T) {
	d := testData()

	stored := d.AddEntry("2025-01-01", FoodEntry{
		Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10,
	})

	if len(d.Log) != 1 {
		t.Fatalf("expected 1 DayLog, got %d", len(d.Log))
	}
	if d.Log[0].Date != "2025-01-01" {
		t.Errorf("expected date 2025-01-01, got %s", d.Log[0].Date)
	}
	if len(d.Log[0].Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(d.Log[0].Entries))
	}
	got := d.Log[0].Entries[0]
	if got.Time != "08:00" || got.Description != "Oatmeal" || got.Calories != 300 || got.Protein != 10 {
		t.Errorf("unexpected stored entry: %+v", got)
	}
	if stored.ID == "" {
		t.Error("expected a generated entry ID")
	}
	if got.ID != stored.ID {
		t.Errorf("returned entry ID %s does not match stored %s", stored.ID, got.ID)
	}
}

func TestAddEntry_NewerDateSortsFirst(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})
	d.AddEntry("2025-01-02", FoodEntry{Time: "12:00", Description: "Salad", Calories: 200, Protein: 5})

	if d.Log[0].Date != "2025-01-02" {
		t.Errorf("expected newest date first, got %s", d.Log[0].Date)
	}
}

func TestAddEntry_LogStaysSortedDescending(t *testing.T) {
	d := testData()
	for _, date := range []string{"2025-01-05", "2025-01-01", "2025-01-10", "2025-01-03"} {
		d.AddEntry(date, FoodEntry{Time: "09:00", Description: "Eggs", Calories: 150, Protein: 12})
	}

	if !sort.SliceIsSorted(d.Log, func(i, j int) bool { return d.Log[i].Date > d.Log[j].Date }) {
		t.Errorf("log not sorted descending by date: %+v", d.Log)
	}
	if len(d.Log) != 4 {
		t.Errorf("expected 4 DayLogs, got %d", len(d.Log))
	}
}

func TestAddEntry_ExistingDateAppendsLast(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "12:00", Description: "Lunch", Calories: 500, Protein: 30})
	// Earlier time of day still appends at the end.
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Breakfast", Calories: 300, Protein: 10})

	if len(d.Log) != 1 {
		t.Fatalf("expected 1 DayLog, got %d", len(d.Log))
	}
	entries := d.Log[0].Entries
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Description != "Breakfast" {
		t.Errorf("expected new entry last, got order %q, %q", entries[0].Description, entries[1].Description)
	}
}

func TestUpdateEntry_PartialPatch(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})

	calories := 350
	updated, err := d.UpdateEntry("2025-01-01", 0, EntryPatch{Calories: &calories})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}

	if updated.Calories != 350 {
		t.Errorf("expected calories 350, got %d", updated.Calories)
	}
	// Unspecified fields unchanged.
	if updated.Time != "08:00" || updated.Description != "Oatmeal" || updated.Protein != 10 {
		t.Errorf("unspecified fields changed: %+v", updated)
	}
	if got := d.Log[0].Entries[0]; got != updated {
		t.Errorf("stored entry %+v does not match returned %+v", got, updated)
	}
}

func TestUpdateEntry_AllFields(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})
	id := d.Log[0].Entries[0].ID

	tm, desc, cal, prot := "09:30", "Oatmeal with berries", 340, 11.5
	updated, err := d.UpdateEntry("2025-01-01", 0, EntryPatch{
		Time: &tm, Description: &desc, Calories: &cal, Protein: &prot,
	})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if updated.Time != tm || updated.Description != desc || updated.Calories != cal || updated.Protein != prot {
		t.Errorf("unexpected updated entry: %+v", updated)
	}
	if updated.ID != id {
		t.Errorf("update must not change the entry ID: had %s, got %s", id, updated.ID)
	}
}

func TestUpdateEntry_Errors(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})

	if _, err := d.UpdateEntry("2024-12-31", 0, EntryPatch{}); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := d.UpdateEntry("2025-01-01", 1, EntryPatch{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := d.UpdateEntry("2025-01-01", -1, EntryPatch{}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange for negative index, got %v", err)
	}
}

func TestDeleteEntry_SoleEntryRemovesDayLog(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})
	d.AddEntry("2025-01-02", FoodEntry{Time: "12:00", Description: "Salad", Calories: 200, Protein: 5})

	deleted, err := d.DeleteEntry("2025-01-01", 0)
	if err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if deleted.Description != "Oatmeal" {
		t.Errorf("expected deleted entry Oatmeal, got %+v", deleted)
	}
	if len(d.Log) != 1 {
		t.Fatalf("expected emptied DayLog to be removed, log: %+v", d.Log)
	}
	if d.Log[0].Date != "2025-01-02" {
		t.Errorf("wrong DayLog removed: %+v", d.Log)
	}
}

func TestDeleteEntry_KeepsRemainingOrder(t *testing.T) {
	d := testData()
	for _, desc := range []string{"Breakfast", "Lunch", "Dinner"} {
		d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: desc, Calories: 100, Protein: 5})
	}

	if _, err := d.DeleteEntry("2025-01-01", 1); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}

	entries := d.Log[0].Entries
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Description != "Breakfast" || entries[1].Description != "Dinner" {
		t.Errorf("relative order not preserved: %q, %q", entries[0].Description, entries[1].Description)
	}
}

func TestDeleteEntry_Errors(t *testing.T) {
	d := testData()
	d.AddEntry("2025-01-01", FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10})

	if _, err := d.DeleteEntry("2024-12-31", 0); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	if _, err := d.DeleteEntry("2025-01-01", 5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if len(d.Log) != 1 || len(d.Log[0].Entries) != 1 {
		t.Errorf("failed delete must leave the document unchanged: %+v", d.Log)
	}
}

func TestDayTotals(t *testing.T) {
	day := DayLog{Date: "2025-01-01", Entries: []FoodEntry{
		{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10},
		{Time: "12:00", Description: "Chicken", Calories: 450, Protein: 42.5},
	}}

	calories, protein := day.Totals()
	if calories != 750 {
		t.Errorf("expected 750 calories, got %d", calories)
	}
	if protein != 52.5 {
		t.Errorf("expected 52.5 protein, got %v", protein)
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2025-01-01", true},
		{"1999-12-31", true},
		{"2025-1-1", false},
		{"01-01-2025", false},
		{"2025-01-01T08:00", false},
		{"", false},
	}
	for _, tt := range tests {
		err := ValidateDate(tt.date)
		if tt.valid && err != nil {
			t.Errorf("ValidateDate(%q) unexpected error: %v", tt.date, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ValidateDate(%q) expected ErrInvalidInput, got %v", tt.date, err)
		}
	}
}

func TestValidateTime(t *testing.T) {
	tests := []struct {
		time  string
		valid bool
	}{
		{"00:00", true},
		{"08:30", true},
		{"23:59", true},
		{"24:00", false},
		{"8:00", false},
		{"12:60", false},
		{"noon", false},
	}
	for _, tt := range tests {
		err := ValidateTime(tt.time)
		if tt.valid && err != nil {
			t.Errorf("ValidateTime(%q) unexpected error: %v", tt.time, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ValidateTime(%q) expected ErrInvalidInput, got %v", tt.time, err)
		}
	}
}

func TestValidateEntry(t *testing.T) {
	valid := FoodEntry{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10}
	if err := ValidateEntry(valid); err != nil {
		t.Errorf("unexpected error for valid entry: %v", err)
	}

	// Length bounds count characters, not bytes: 300 two-byte characters
	// stay within the 500-character limit.
	multibyte := FoodEntry{Time: "08:00", Description: strings.Repeat("é", 300), Calories: 300, Protein: 10}
	if err := ValidateEntry(multibyte); err != nil {
		t.Errorf("unexpected error for 300-character multibyte description: %v", err)
	}

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'x'
	}

	invalid := []FoodEntry{
		{Time: "25:00", Description: "Oatmeal", Calories: 300, Protein: 10},
		{Time: "08:00", Description: "", Calories: 300, Protein: 10},
		{Time: "08:00", Description: string(long), Calories: 300, Protein: 10},
		{Time: "08:00", Description: strings.Repeat("é", 501), Calories: 300, Protein: 10},
		{Time: "08:00", Description: "Oatmeal", Calories: -1, Protein: 10},
		{Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: -0.5},
	}
	for _, e := range invalid {
		if err := ValidateEntry(e); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for %+v, got %v", e, err)
		}
	}
}
