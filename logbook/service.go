package logbook

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PeterBowles/Macro-Tracker/macro"
	"github.com/PeterBowles/Macro-Tracker/store"
)

// Service runs the domain operations against a document store.
type Service struct {
	store store.Store
	log   *slog.Logger
}

// NewService creates a Service. A nil logger disables logging.
func NewService(s store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: s, log: logger}
}

// fetch reads and decodes the current document along with its version tag.
func (s *Service) fetch(ctx context.Context) (macro.Data, string, error) {
	f, err := s.store.GetFile(ctx)
	if err != nil {
		return macro.Data{}, "", err
	}
	doc, err := store.DecodeDocument(f)
	if err != nil {
		return macro.Data{}, "", err
	}
	return doc, f.Tag, nil
}

// commit writes the document guarded by the store's current tag, re-read
// here immediately before the write rather than carried over from the
// caller's fetch. The body being written still comes from that earlier
// fetch: a concurrent write landing before the re-read is overwritten
// without conflict, and only one landing after it trips ErrRemoteConflict.
func (s *Service) commit(ctx context.Context, doc macro.Data, message string) error {
	f, err := s.store.GetFile(ctx)
	if err != nil {
		return err
	}
	content, err := store.EncodeDocument(doc)
	if err != nil {
		return err
	}
	if err := s.store.PutFile(ctx, content, f.Tag, message); err != nil {
		return err
	}
	s.log.Info("committed document", "message", message)
	return nil
}

// Read returns the full current document. Read-only.
func (s *Service) Read(ctx context.Context) (macro.Data, error) {
	doc, _, err := s.fetch(ctx)
	return doc, err
}

// AddEntryParams are the fields of a new entry and its date.
type AddEntryParams struct {
	Date        string
	Time        string
	Description string
	Calories    int
	Protein     float64
}

// AddEntry appends a new entry under its date, creating and re-sorting the
// day log when the date is new. Returns the stored entry.
func (s *Service) AddEntry(ctx context.Context, p AddEntryParams) (macro.FoodEntry, error) {
	if err := macro.ValidateDate(p.Date); err != nil {
		return macro.FoodEntry{}, err
	}
	entry := macro.FoodEntry{
		Time:        p.Time,
		Description: p.Description,
		Calories:    p.Calories,
		Protein:     p.Protein,
	}
	if err := macro.ValidateEntry(entry); err != nil {
		return macro.FoodEntry{}, err
	}

	doc, _, err := s.fetch(ctx)
	if err != nil {
		return macro.FoodEntry{}, err
	}

	stored := doc.AddEntry(p.Date, entry)

	message := fmt.Sprintf("Add entry for %s: %s (%d cal, %.1fg protein)",
		p.Date, stored.Description, stored.Calories, stored.Protein)
	if err := s.commit(ctx, doc, message); err != nil {
		return macro.FoodEntry{}, err
	}
	return stored, nil
}

// UpdateEntryParams identify an entry by (date, index) and carry the
// optional fields to overwrite. Nil fields keep their prior values.
type UpdateEntryParams struct {
	Date        string
	EntryIndex  int
	Time        *string
	Description *string
	Calories    *int
	Protein     *float64
}

// UpdateEntry overwrites the supplied fields of the addressed entry.
// Returns the fully updated entry.
func (s *Service) UpdateEntry(ctx context.Context, p UpdateEntryParams) (macro.FoodEntry, error) {
	if err := macro.ValidateDate(p.Date); err != nil {
		return macro.FoodEntry{}, err
	}
	if p.Time != nil {
		if err := macro.ValidateTime(*p.Time); err != nil {
			return macro.FoodEntry{}, err
		}
	}
	if p.Description != nil {
		if err := macro.ValidateDescription(*p.Description); err != nil {
			return macro.FoodEntry{}, err
		}
	}
	if p.Calories != nil && *p.Calories < 0 {
		return macro.FoodEntry{}, fmt.Errorf("%w: calories must be non-negative", macro.ErrInvalidInput)
	}
	if p.Protein != nil && *p.Protein < 0 {
		return macro.FoodEntry{}, fmt.Errorf("%w: protein must be non-negative", macro.ErrInvalidInput)
	}

	doc, _, err := s.fetch(ctx)
	if err != nil {
		return macro.FoodEntry{}, err
	}

	updated, err := doc.UpdateEntry(p.Date, p.EntryIndex, macro.EntryPatch{
		Time:        p.Time,
		Description: p.Description,
		Calories:    p.Calories,
		Protein:     p.Protein,
	})
	if err != nil {
		return macro.FoodEntry{}, err
	}

	message := fmt.Sprintf("Update entry %d for %s: %s", p.EntryIndex, p.Date, updated.Description)
	if err := s.commit(ctx, doc, message); err != nil {
		return macro.FoodEntry{}, err
	}
	return updated, nil
}

// DeleteEntryParams identify the entry to remove.
type DeleteEntryParams struct {
	Date       string
	EntryIndex int
}

// DeleteEntry removes the addressed entry; later entries shift down one
// index, and an emptied day log is dropped. Returns the deleted entry's
// prior values.
func (s *Service) DeleteEntry(ctx context.Context, p DeleteEntryParams) (macro.FoodEntry, error) {
	if err := macro.ValidateDate(p.Date); err != nil {
		return macro.FoodEntry{}, err
	}

	doc, _, err := s.fetch(ctx)
	if err != nil {
		return macro.FoodEntry{}, err
	}

	deleted, err := doc.DeleteEntry(p.Date, p.EntryIndex)
	if err != nil {
		return macro.FoodEntry{}, err
	}

	message := fmt.Sprintf("Delete entry %d for %s: %s", p.EntryIndex, p.Date, deleted.Description)
	if err := s.commit(ctx, doc, message); err != nil {
		return macro.FoodEntry{}, err
	}
	return deleted, nil
}
