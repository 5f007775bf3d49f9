package validate

import "sync"

// Store holds the current findings per document, keyed by document path
// or URI. A run's findings replace the previous set for that document as
// a single bulk write, so revalidating a fixed document leaves an empty
// set rather than stale entries.
//
// The store is process-wide state: the CLI owns one per run, the LSP
// server one per session. The mutex covers concurrent didChange bursts;
// validation of a single document is otherwise synchronous.
type Store struct {
	mu    sync.Mutex
	byDoc map[string][]Finding
}

// NewStore creates an empty findings store.
func NewStore() *Store {
	return &Store{byDoc: make(map[string][]Finding)}
}

// Set replaces the findings for key. An empty or nil slice clears the
// document's entry.
func (s *Store) Set(key string, findings []Finding) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(findings) == 0 {
		delete(s.byDoc, key)
		return
	}
	s.byDoc[key] = findings
}

// Get returns the stored findings for key, or nil.
func (s *Store) Get(key string) []Finding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byDoc[key]
}

// Delete removes the findings for key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byDoc, key)
}

// Clear removes all stored findings.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byDoc = make(map[string][]Finding)
}

// Len returns the number of documents with stored findings.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byDoc)
}
