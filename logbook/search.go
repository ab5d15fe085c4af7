package logbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

// DefaultSearchLimit caps result count when the caller does not supply one.
const DefaultSearchLimit = 10

// SearchHit is one ranked match from SearchEntries. Index is the entry's
// current position within its day log, valid until the next mutation.
type SearchHit struct {
	Date  string          `json:"date"`
	Index int             `json:"entryIndex"`
	Entry macro.FoodEntry `json:"entry"`
	Score float64         `json:"score"`
}

type searchDoc struct {
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Description string  `json:"description"`
	Calories    int     `json:"calories"`
	Protein     float64 `json:"protein"`
}

// SearchEntries fetches the current document and runs a full-text match
// query over entry descriptions. The index is built in memory per call and
// discarded; the document itself is never written. Read-only.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty search query", macro.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	doc, _, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	idx, err := buildEntryIndex(doc)
	if err != nil {
		return nil, err
	}
	defer func() { _ = idx.Close() }()

	match := bleve.NewMatchQuery(query)
	match.SetField("description")
	req := bleve.NewSearchRequestOptions(match, limit, 0, false)
	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}

	hits := make([]SearchHit, 0, len(res.Hits))
	for _, hit := range res.Hits {
		date, entryIndex, ok := splitEntryID(hit.ID)
		if !ok {
			continue
		}
		day, found := doc.Day(date)
		if !found || entryIndex >= len(day.Entries) {
			continue
		}
		hits = append(hits, SearchHit{
			Date:  date,
			Index: entryIndex,
			Entry: day.Entries[entryIndex],
			Score: hit.Score,
		})
	}
	return hits, nil
}

// buildEntryIndex indexes every entry of the document in memory, keyed by
// "date#index".
func buildEntryIndex(d macro.Data) (bleve.Index, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("building entry index: %w", err)
	}

	batch := idx.NewBatch()
	for _, day := range d.Log {
		for i, e := range day.Entries {
			err := batch.Index(entryID(day.Date, i), searchDoc{
				Date:        day.Date,
				Time:        e.Time,
				Description: e.Description,
				Calories:    e.Calories,
				Protein:     e.Protein,
			})
			if err != nil {
				_ = idx.Close()
				return nil, fmt.Errorf("indexing entry: %w", err)
			}
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("indexing entries: %w", err)
	}
	return idx, nil
}

func entryID(date string, index int) string {
	return date + "#" + strconv.Itoa(index)
}

func splitEntryID(id string) (date string, index int, ok bool) {
	date, num, found := strings.Cut(id, "#")
	if !found {
		return "", 0, false
	}
	index, err := strconv.Atoi(num)
	if err != nil || index < 0 {
		return "", 0, false
	}
	return date, index, true
}
