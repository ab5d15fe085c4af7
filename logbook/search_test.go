package logbook

import (
	"context"
	"errors"
	"testing"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

func searchFixture() macro.Data {
	return macro.Data{
		Goals: macro.Goals{Calories: 2000, Protein: 150},
		Log: []macro.DayLog{
			{Date: "2025-01-02", Entries: []macro.FoodEntry{
				{ID: "c", Time: "08:30", Description: "Oatmeal with berries", Calories: 340, Protein: 11},
			}},
			{Date: "2025-01-01", Entries: []macro.FoodEntry{
				{ID: "a", Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10},
				{ID: "b", Time: "12:30", Description: "Grilled chicken", Calories: 450, Protein: 42},
			}},
		},
	}
}

func TestSearchEntries(t *testing.T) {
	svc, _ := seededService(t, searchFixture())

	hits, err := svc.SearchEntries(context.Background(), "oatmeal", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d: %+v", len(hits), hits)
	}
	for _, hit := range hits {
		if hit.Entry.ID != "a" && hit.Entry.ID != "c" {
			t.Errorf("unexpected hit: %+v", hit)
		}
		if hit.Score <= 0 {
			t.Errorf("expected positive score, got %v", hit.Score)
		}
	}
}

func TestSearchEntries_AddressesByDateAndIndex(t *testing.T) {
	svc, _ := seededService(t, searchFixture())

	hits, err := svc.SearchEntries(context.Background(), "chicken", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Date != "2025-01-01" || hits[0].Index != 1 {
		t.Errorf("expected (2025-01-01, 1), got (%s, %d)", hits[0].Date, hits[0].Index)
	}
}

func TestSearchEntries_Limit(t *testing.T) {
	svc, _ := seededService(t, searchFixture())

	hits, err := svc.SearchEntries(context.Background(), "oatmeal", 1)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("expected limit to cap hits at 1, got %d", len(hits))
	}
}

func TestSearchEntries_NoMatches(t *testing.T) {
	svc, _ := seededService(t, searchFixture())

	hits, err := svc.SearchEntries(context.Background(), "pizza", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("expected no hits, got %+v", hits)
	}
}

func TestSearchEntries_EmptyQuery(t *testing.T) {
	svc, _ := seededService(t, searchFixture())

	if _, err := svc.SearchEntries(context.Background(), "  ", 10); !errors.Is(err, macro.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
