package detector

import (
	"strings"

	"github.com/rs/zerolog/log"

	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/pattern"
)

const (
	DefaultSampleSize = 20
	DefaultThreshold  = 0.5
)

// Detector classifies a blob of log lines into one of the known formats by
// scoring a sample of lines against every format's rule set. Detection is
// a pure function of (lines, pattern library): same input, same answer.
type Detector struct {
	lib        *pattern.Library
	sampleSize int
	threshold  float64
}

func NewDetector(lib *pattern.Library, sampleSize int, threshold float64) *Detector {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &Detector{lib: lib, sampleSize: sampleSize, threshold: threshold}
}

// Detect samples the first lines of the input and returns the best-scoring
// format, or FormatGeneric when no format clears the match threshold.
// Ties go to the earlier format in the library's priority order.
func (d *Detector) Detect(lines []string) model.LogFormat {
	sample := make([]string, 0, d.sampleSize)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == d.sampleSize {
			break
		}
	}
	if len(sample) == 0 {
		return model.FormatGeneric
	}

	best := model.FormatGeneric
	bestRatio := d.threshold
	for _, format := range d.lib.Priority() {
		matches := 0
		for _, line := range sample {
			for _, rule := range d.lib.RulesFor(format) {
				if _, ok := rule.Match(line); ok {
					matches++
					break
				}
			}
		}
		// Strictly-greater keeps the earlier format on equal scores.
		if ratio := float64(matches) / float64(len(sample)); ratio > bestRatio {
			best = format
			bestRatio = ratio
		}
	}

	log.Debug().
		Str("format", string(best)).
		Int("sampled_lines", len(sample)).
		Msg("Detected log format")
	return best
}
