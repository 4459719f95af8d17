package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"log-analytics-backend/internal/model"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// Analysis is one finished run kept around for filtering and export. The
// parsed records are retained so filtered views can be re-aggregated from
// scratch instead of approximated from the existing tables.
type Analysis struct {
	ID        string
	Result    *model.AnalysisResult
	Records   []model.ParsedRecord
	CreatedAt time.Time
}

// AnalysisStore keeps recent analyses in memory. Entries are process-local
// and expire; nothing is persisted across restarts.
type AnalysisStore interface {
	Save(ctx context.Context, result *model.AnalysisResult, records []model.ParsedRecord) (string, error)
	Get(ctx context.Context, id string) (*Analysis, error)
	Sweep(ctx context.Context, olderThan time.Time) int
}

type inMemoryAnalysisStore struct {
	store map[string]*Analysis
	mu    sync.RWMutex
}

func NewInMemoryAnalysisStore() AnalysisStore {
	return &inMemoryAnalysisStore{
		store: make(map[string]*Analysis),
	}
}

func (s *inMemoryAnalysisStore) Save(ctx context.Context, result *model.AnalysisResult, records []model.ParsedRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	newID := uuid.NewString()
	s.store[newID] = &Analysis{
		ID:        newID,
		Result:    result,
		Records:   records,
		CreatedAt: time.Now().UTC(),
	}
	return newID, nil
}

func (s *inMemoryAnalysisStore) Get(ctx context.Context, id string) (*Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.store[id]; ok {
		return a, nil
	}
	return nil, ErrAnalysisNotFound
}

// Sweep drops analyses created before the cutoff and returns how many were
// removed.
func (s *inMemoryAnalysisStore) Sweep(ctx context.Context, olderThan time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, a := range s.store {
		if a.CreatedAt.Before(olderThan) {
			delete(s.store, id)
			removed++
		}
	}
	return removed
}
