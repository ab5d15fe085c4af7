package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/PeterBowles/Macro-Tracker/macro"
)

// InMemoryStore implements Store in memory with the same tag-gated write
// semantics as the remote store. Failure and conflict injection make the
// error paths testable without a network dependency.
type InMemoryStore struct {
	mu       sync.Mutex
	content  string
	tag      int
	puts     int
	messages []string

	nextGetErr error
	nextPutErr error
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// NewInMemoryStoreWith creates an in-memory store seeded with the document.
func NewInMemoryStoreWith(d macro.Data) (*InMemoryStore, error) {
	s := NewInMemoryStore()
	if err := s.SetDocument(d); err != nil {
		return nil, err
	}
	return s, nil
}

// GetFile returns the current content and version tag.
func (s *InMemoryStore) GetFile(ctx context.Context) (File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nextGetErr; err != nil {
		s.nextGetErr = nil
		return File{}, err
	}
	return File{Content: s.content, Encoding: "base64", Tag: s.tagString()}, nil
}

// PutFile replaces the content when tag matches the current version tag.
func (s *InMemoryStore) PutFile(ctx context.Context, content, tag, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.nextPutErr; err != nil {
		s.nextPutErr = nil
		return err
	}
	if tag != s.tagString() {
		return fmt.Errorf("%w: have %s, want %s", ErrRemoteConflict, tag, s.tagString())
	}

	s.content = content
	s.tag++
	s.puts++
	s.messages = append(s.messages, message)
	return nil
}

// SetDocument encodes and stores the document, bumping the version tag.
// Writes directly, bypassing the tag check, as an external editor would.
func (s *InMemoryStore) SetDocument(d macro.Data) error {
	content, err := EncodeDocument(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.tag++
	return nil
}

// SetRawContent stores transport content verbatim, bypassing the codec.
// Lets tests plant content that does not decode.
func (s *InMemoryStore) SetRawContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
	s.tag++
}

// Document decodes and returns the currently stored document.
func (s *InMemoryStore) Document() (macro.Data, error) {
	s.mu.Lock()
	f := File{Content: s.content, Encoding: "base64", Tag: s.tagString()}
	s.mu.Unlock()
	return DecodeDocument(f)
}

// FailNextGet makes the next GetFile return err.
func (s *InMemoryStore) FailNextGet(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGetErr = err
}

// FailNextPut makes the next PutFile return err.
func (s *InMemoryStore) FailNextPut(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPutErr = err
}

// BumpTag advances the version tag without changing content, simulating a
// concurrent external write landing between a fetch and a commit.
func (s *InMemoryStore) BumpTag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tag++
}

// Puts reports how many writes have been accepted.
func (s *InMemoryStore) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}

// Messages returns the change descriptions of accepted writes, in order.
func (s *InMemoryStore) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *InMemoryStore) tagString() string {
	return fmt.Sprintf("tag-%d", s.tag)
}
