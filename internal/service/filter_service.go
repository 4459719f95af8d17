package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"log-analytics-backend/config"
	"log-analytics-backend/internal/aggregator"
	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/store"
)

// FilterCriteria restricts a stored analysis to matching records. Zero
// values mean "no constraint".
type FilterCriteria struct {
	StartTime  time.Time
	EndTime    time.Time
	Source     string // substring on IP or hostname
	URL        string // substring
	StatusCode int    // exact
	Search     string // substring on the raw line
}

// FilterService produces a filtered view of a stored analysis by re-running
// the aggregation over the retained records that satisfy the criteria.
// Filtered statistics are always recomputed, never scaled from the
// original tables.
type FilterService interface {
	Filter(ctx context.Context, analysisID string, criteria FilterCriteria) (*model.AnalysisResult, error)
}

type filterService struct {
	analysisStore store.AnalysisStore
	topK          int
}

func NewFilterService(analysisStore store.AnalysisStore, cfg *config.Config) FilterService {
	return &filterService{
		analysisStore: analysisStore,
		topK:          cfg.Analysis.TopK,
	}
}

func (s *filterService) Filter(ctx context.Context, analysisID string, criteria FilterCriteria) (*model.AnalysisResult, error) {
	analysis, err := s.analysisStore.Get(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	agg := aggregator.New(analysis.Result.DetectedFormat, s.topK)
	matched := 0
	for _, rec := range analysis.Records {
		if !criteria.matches(rec) {
			continue
		}
		if err := agg.Fold(rec); err != nil {
			return nil, err
		}
		matched++
	}

	log.Info().
		Str("analysis_id", analysisID).
		Int("matched", matched).
		Int("of", len(analysis.Records)).
		Msg("Filtered analysis")

	return agg.Finalize(), nil
}

func (c FilterCriteria) matches(rec model.ParsedRecord) bool {
	if !c.StartTime.IsZero() {
		if rec.Timestamp.IsZero() || rec.Timestamp.Before(c.StartTime) {
			return false
		}
	}
	if !c.EndTime.IsZero() {
		if rec.Timestamp.IsZero() || rec.Timestamp.After(c.EndTime) {
			return false
		}
	}
	if c.Source != "" {
		source := strings.ToLower(rec.SourceIP + rec.Hostname)
		if !strings.Contains(source, strings.ToLower(c.Source)) {
			return false
		}
	}
	if c.URL != "" && !strings.Contains(strings.ToLower(rec.URL), strings.ToLower(c.URL)) {
		return false
	}
	if c.StatusCode != 0 && rec.StatusCode != c.StatusCode {
		return false
	}
	if c.Search != "" && !strings.Contains(strings.ToLower(rec.Raw), strings.ToLower(c.Search)) {
		return false
	}
	return true
}
