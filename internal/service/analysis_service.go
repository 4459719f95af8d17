package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"log-analytics-backend/config"
	"log-analytics-backend/internal/aggregator"
	"log-analytics-backend/internal/detector"
	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/parser"
	"log-analytics-backend/internal/store"
)

var (
	ErrInputTooLarge    = errors.New("input exceeds the configured size limit")
	ErrUnreadableInput  = errors.New("input is not readable as text")
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// AnalysisService runs the full pipeline: size/encoding checks, format
// detection, per-line parsing, aggregation, and storage of the finished
// run. Each call owns its own Aggregator, so concurrent requests need no
// locking.
type AnalysisService interface {
	Analyze(ctx context.Context, content []byte, declaredFormat string) (*store.Analysis, error)
}

type analysisService struct {
	detector      *detector.Detector
	lineParser    *parser.LineParser
	analysisStore store.AnalysisStore
	maxInputBytes int64
	topK          int
}

func NewAnalysisService(
	d *detector.Detector,
	p *parser.LineParser,
	analysisStore store.AnalysisStore,
	cfg *config.Config,
) AnalysisService {
	return &analysisService{
		detector:      d,
		lineParser:    p,
		analysisStore: analysisStore,
		maxInputBytes: cfg.Analysis.MaxInputBytes,
		topK:          cfg.Analysis.TopK,
	}
}

func (s *analysisService) Analyze(ctx context.Context, content []byte, declaredFormat string) (*store.Analysis, error) {
	if int64(len(content)) > s.maxInputBytes {
		return nil, ErrInputTooLarge
	}
	// Fail fast on binary blobs; per-line anomalies are absorbed later,
	// but undecodable input never produces a partial result.
	if bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content) {
		return nil, ErrUnreadableInput
	}

	format, ok := model.ParseLogFormat(declaredFormat)
	if !ok {
		return nil, ErrUnknownLogFormat
	}

	lines := strings.Split(string(content), "\n")
	if format == "" {
		format = s.detector.Detect(lines)
	}

	agg := aggregator.New(format, s.topK)
	records := make([]model.ParsedRecord, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue // empty lines never count toward totals
		}
		rec := s.lineParser.Parse(line, format)
		if err := agg.Fold(rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	result := agg.Finalize()

	id, err := s.analysisStore.Save(ctx, result, records)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("analysis_id", id).
		Str("format", string(format)).
		Int("total_entries", result.TotalEntries).
		Int("error_count", result.ErrorCount).
		Int("warning_count", result.WarningCount).
		Msg("Analysis completed")

	return &store.Analysis{ID: id, Result: result, Records: records}, nil
}
