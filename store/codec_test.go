package store

import (
	"encoding/base64"
	"errors"
	"reflect"
	"testing"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

func TestDocumentRoundTrip(t *testing.T) {
	doc := macro.Data{
		Goals: macro.Goals{Calories: 2000, Protein: 150},
		Log: []macro.DayLog{
			{Date: "2025-01-02", Entries: []macro.FoodEntry{
				{ID: "a", Time: "12:00", Description: "Salad", Calories: 200, Protein: 5},
			}},
			{Date: "2025-01-01", Entries: []macro.FoodEntry{
				{ID: "b", Time: "08:00", Description: "Oatmeal", Calories: 300, Protein: 10},
				{ID: "c", Time: "19:30", Description: "Chicken", Calories: 450, Protein: 42.5},
			}},
		},
	}

	content, err := EncodeDocument(doc)
	if err != nil {
		t.Fatalf("EncodeDocument failed: %v", err)
	}

	decoded, err := DecodeDocument(File{Content: content, Encoding: "base64", Tag: "abc"})
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}

	if !reflect.DeepEqual(decoded, doc) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", decoded, doc)
	}
}

func TestDecodeDocument_StripsContentNewlines(t *testing.T) {
	// The contents API wraps base64 payloads at 60 columns.
	content, err := EncodeDocument(macro.Data{Goals: macro.Goals{Calories: 1800, Protein: 120}})
	if err != nil {
		t.Fatalf("EncodeDocument failed: %v", err)
	}
	wrapped := ""
	for i := 0; i < len(content); i += 60 {
		end := i + 60
		if end > len(content) {
			end = len(content)
		}
		wrapped += content[i:end] + "\n"
	}

	doc, err := DecodeDocument(File{Content: wrapped, Encoding: "base64"})
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}
	if doc.Goals.Calories != 1800 {
		t.Errorf("expected goals calories 1800, got %d", doc.Goals.Calories)
	}
}

func TestDecodeDocument_Malformed(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	tests := []struct {
		name string
		file File
	}{
		{"not base64", File{Content: "%%%not-base64%%%", Encoding: "base64"}},
		{"unsupported encoding", File{Content: b64("{}"), Encoding: "utf-8"}},
		{"not json", File{Content: b64("not json at all")}},
		{"missing goals", File{Content: b64(`{"log":[]}`)}},
		{"missing log", File{Content: b64(`{"goals":{"calories":2000,"protein":150}}`)}},
		{"wrong nesting", File{Content: b64(`{"goals":[],"log":{}}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeDocument(tt.file); !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("expected ErrMalformedDocument, got %v", err)
			}
		})
	}
}

func TestEncodeDocument_NilLog(t *testing.T) {
	content, err := EncodeDocument(macro.Data{Goals: macro.Goals{Calories: 2000, Protein: 150}})
	if err != nil {
		t.Fatalf("EncodeDocument failed: %v", err)
	}
	doc, err := DecodeDocument(File{Content: content})
	if err != nil {
		t.Fatalf("DecodeDocument failed: %v", err)
	}
	if doc.Log == nil || len(doc.Log) != 0 {
		t.Errorf("expected empty log, got %+v", doc.Log)
	}
}
