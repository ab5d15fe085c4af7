package server

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

// noExtraFields rejects properties not declared in the schema.
func noExtraFields() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func dateSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     macro.DatePattern,
		Description: "Calendar date in YYYY-MM-DD format",
	}
}

func timeSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     macro.TimePattern,
		Description: "24-hour time of day in HH:MM format",
	}
}

func descriptionSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		MinLength:   intPtr(macro.DescriptionMinLen),
		MaxLength:   intPtr(macro.DescriptionMaxLen),
		Description: "What was eaten",
	}
}

func caloriesSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Minimum:     floatPtr(0),
		Description: "Calories, non-negative",
	}
}

func proteinSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "number",
		Minimum:     floatPtr(0),
		Description: "Grams of protein, non-negative",
	}
}

func entryIndexSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Minimum:     floatPtr(0),
		Description: "Zero-based position of the entry within its date",
	}
}

func readInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: noExtraFields(),
	}
}

func addEntryInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"date":        dateSchema(),
			"time":        timeSchema(),
			"description": descriptionSchema(),
			"calories":    caloriesSchema(),
			"protein":     proteinSchema(),
		},
		Required:             []string{"date", "time", "description", "calories", "protein"},
		AdditionalProperties: noExtraFields(),
	}
}

func updateEntryInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"date":        dateSchema(),
			"entryIndex":  entryIndexSchema(),
			"time":        timeSchema(),
			"description": descriptionSchema(),
			"calories":    caloriesSchema(),
			"protein":     proteinSchema(),
		},
		Required:             []string{"date", "entryIndex"},
		AdditionalProperties: noExtraFields(),
	}
}

func deleteEntryInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"date":       dateSchema(),
			"entryIndex": entryIndexSchema(),
		},
		Required:             []string{"date", "entryIndex"},
		AdditionalProperties: noExtraFields(),
	}
}

func searchEntriesInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				MinLength:   intPtr(1),
				Description: "Full-text query matched against entry descriptions",
			},
			"limit": {
				Type:        "integer",
				Minimum:     floatPtr(1),
				Maximum:     floatPtr(100),
				Description: "Maximum number of hits to return",
			},
		},
		Required:             []string{"query"},
		AdditionalProperties: noExtraFields(),
	}
}
