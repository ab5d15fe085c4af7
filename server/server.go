package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/PeterBowles/Macro-Tracker/logbook"
	"github.com/PeterBowles/Macro-Tracker/macro"
)

// Options configures the MCP server.
type Options struct {
	// Version reported in the initialize response.
	Version string
	// Logger for invocation logging. Nil disables logging.
	Logger *slog.Logger
}

// New builds the MCP server with all tools registered against svc.
func New(svc *logbook.Service, opts Options) *mcp.Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	t := &tools{svc: svc, log: logger}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "macro-tracker",
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "read",
		Description: "Read the full nutrition log: daily goals and every logged day with its entries.",
		InputSchema: readInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, t.read)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "add-entry",
		Description: "Log a food entry under a date. Creates the date's log if it does not exist; the new entry always appends last.",
		InputSchema: addEntryInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.addEntry)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "update-entry",
		Description: "Overwrite fields of the entry at (date, entryIndex). Omitted fields keep their current values.",
		InputSchema: updateEntryInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			IdempotentHint:  true,
			OpenWorldHint:   boolPtr(false),
		},
	}, t.updateEntry)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "delete-entry",
		Description: "Delete the entry at (date, entryIndex). Later entries shift down one index; an emptied date is removed from the log.",
		InputSchema: deleteEntryInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(false),
		},
	}, t.deleteEntry)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search-entries",
		Description: "Full-text search over logged entry descriptions. Returns ranked hits addressed by (date, entryIndex).",
		InputSchema: searchEntriesInputSchema(),
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, t.searchEntries)

	return srv
}

type tools struct {
	svc *logbook.Service
	log *slog.Logger
}

// observe logs one invocation outcome. Domain failures are reported results,
// not transport failures, so they log as warnings and the process carries on.
func (t *tools) observe(tool string, start time.Time, err error) {
	if err != nil {
		t.log.Warn("tool call failed", "tool", tool, "duration", time.Since(start), "error", err)
		return
	}
	t.log.Info("tool call", "tool", tool, "duration", time.Since(start))
}

type readArgs struct{}

func (t *tools) read(ctx context.Context, req *mcp.CallToolRequest, _ readArgs) (*mcp.CallToolResult, macro.Data, error) {
	start := time.Now()
	doc, err := t.svc.Read(ctx)
	t.observe("read", start, err)
	if err != nil {
		return nil, macro.Data{}, err
	}

	return textResult(logbook.Report(doc)), doc, nil
}

type addEntryArgs struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
}

type addEntryResult struct {
	Date  string          `json:"date"`
	Entry macro.FoodEntry `json:"entry"`
}

func (t *tools) addEntry(ctx context.Context, req *mcp.CallToolRequest, args addEntryArgs) (*mcp.CallToolResult, addEntryResult, error) {
	start := time.Now()
	entry, err := t.svc.AddEntry(ctx, logbook.AddEntryParams{
		Date:        args.Date,
		Time:        args.Time,
		Description: args.Description,
		Calories:    args.Calories,
		Protein:     args.Protein,
	})
	t.observe("add-entry", start, err)
	if err != nil {
		return nil, addEntryResult{}, err
	}

	text := fmt.Sprintf("Added entry for %s: %s at %s (%d cal, %.1fg protein)",
		args.Date, entry.Description, entry.Time, entry.Calories, entry.Protein)
	return textResult(text), addEntryResult{Date: args.Date, Entry: entry}, nil
}

type updateEntryArgs struct {
	Date        string   `json:"date"`
	EntryIndex  int      `json:"entryIndex"`
	Time        *string  `json:"time,omitempty"`
	Description *string  `json:"description,omitempty"`
	Calories    *int     `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
}

type updateEntryResult struct {
	Date       string          `json:"date"`
	EntryIndex int             `json:"entryIndex"`
	Entry      macro.FoodEntry `json:"entry"`
}

func (t *tools) updateEntry(ctx context.Context, req *mcp.CallToolRequest, args updateEntryArgs) (*mcp.CallToolResult, updateEntryResult, error) {
	start := time.Now()
	entry, err := t.svc.UpdateEntry(ctx, logbook.UpdateEntryParams{
		Date:        args.Date,
		EntryIndex:  args.EntryIndex,
		Time:        args.Time,
		Description: args.Description,
		Calories:    args.Calories,
		Protein:     args.Protein,
	})
	t.observe("update-entry", start, err)
	if err != nil {
		return nil, updateEntryResult{}, err
	}

	text := fmt.Sprintf("Updated entry %d for %s: %s at %s (%d cal, %.1fg protein)",
		args.EntryIndex, args.Date, entry.Description, entry.Time, entry.Calories, entry.Protein)
	return textResult(text), updateEntryResult{Date: args.Date, EntryIndex: args.EntryIndex, Entry: entry}, nil
}

type deleteEntryArgs struct {
	Date       string `json:"date"`
	EntryIndex int    `json:"entryIndex"`
}

type deleteEntryResult struct {
	Date       string          `json:"date"`
	EntryIndex int             `json:"entryIndex"`
	Deleted    macro.FoodEntry `json:"deleted"`
}

func (t *tools) deleteEntry(ctx context.Context, req *mcp.CallToolRequest, args deleteEntryArgs) (*mcp.CallToolResult, deleteEntryResult, error) {
	start := time.Now()
	deleted, err := t.svc.DeleteEntry(ctx, logbook.DeleteEntryParams{
		Date:       args.Date,
		EntryIndex: args.EntryIndex,
	})
	t.observe("delete-entry", start, err)
	if err != nil {
		return nil, deleteEntryResult{}, err
	}

	text := fmt.Sprintf("Deleted entry %d for %s: %s at %s (%d cal, %.1fg protein)",
		args.EntryIndex, args.Date, deleted.Description, deleted.Time, deleted.Calories, deleted.Protein)
	return textResult(text), deleteEntryResult{Date: args.Date, EntryIndex: args.EntryIndex, Deleted: deleted}, nil
}

type searchEntriesArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type searchEntriesResult struct {
	Query string              `json:"query"`
	Hits  []logbook.SearchHit `json:"hits"`
}

func (t *tools) searchEntries(ctx context.Context, req *mcp.CallToolRequest, args searchEntriesArgs) (*mcp.CallToolResult, searchEntriesResult, error) {
	start := time.Now()
	hits, err := t.svc.SearchEntries(ctx, args.Query, args.Limit)
	t.observe("search-entries", start, err)
	if err != nil {
		return nil, searchEntriesResult{}, err
	}

	text := fmt.Sprintf("%d matching entries for %q", len(hits), args.Query)
	for _, h := range hits {
		text += fmt.Sprintf("\n  %s [%d] %s %s (%d cal, %.1fg protein)",
			h.Date, h.Index, h.Entry.Time, h.Entry.Description, h.Entry.Calories, h.Entry.Protein)
	}
	return textResult(text), searchEntriesResult{Query: args.Query, Hits: hits}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
