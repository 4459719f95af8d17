package aggregator

import (
	"errors"
	"strconv"
	"time"

	"log-analytics-backend/internal/model"
)

const DefaultTopK = 10

var (
	ErrFinalized      = errors.New("aggregator already finalized")
	ErrFormatMismatch = errors.New("cannot merge aggregators of different formats")
)

type state int

const (
	stateEmpty state = iota
	stateAccumulating
	stateFinalized
)

// Aggregator folds parsed records into running counters and bounded
// frequency tables in a single linear pass. One Aggregator belongs to one
// analysis run; instances are not safe for concurrent use and are never
// shared between runs.
type Aggregator struct {
	format model.LogFormat
	topK   int
	state  state

	total    int
	errors   int
	warnings int
	infos    int

	ips        *frequencyTable
	urls       *frequencyTable
	hostnames  *frequencyTable
	processes  *frequencyTable
	processIDs *frequencyTable
	interfaces *frequencyTable
	facilities *frequencyTable
	statuses   *frequencyTable

	snapshot *model.AnalysisResult
}

func New(format model.LogFormat, topK int) *Aggregator {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Aggregator{
		format:     format,
		topK:       topK,
		ips:        newFrequencyTable(),
		urls:       newFrequencyTable(),
		hostnames:  newFrequencyTable(),
		processes:  newFrequencyTable(),
		processIDs: newFrequencyTable(),
		interfaces: newFrequencyTable(),
		facilities: newFrequencyTable(),
		statuses:   newFrequencyTable(),
	}
}

// Fold adds one record to the running aggregate. Valid only before
// Finalize; records folded afterwards are rejected.
func (a *Aggregator) Fold(rec model.ParsedRecord) error {
	if a.state == stateFinalized {
		return ErrFinalized
	}
	a.state = stateAccumulating

	a.total++
	switch rec.Severity {
	case model.SeverityError:
		a.errors++
	case model.SeverityWarning:
		a.warnings++
	case model.SeverityInfo:
		a.infos++
	}

	if rec.SourceIP != "" {
		a.ips.Inc(rec.SourceIP)
	}
	if rec.URL != "" {
		a.urls.Inc(rec.URL)
	}
	if rec.Hostname != "" {
		a.hostnames.Inc(rec.Hostname)
	}
	if rec.Process != "" {
		a.processes.Inc(rec.Process)
	}
	if rec.ProcessID != "" {
		a.processIDs.Inc(rec.ProcessID)
	}
	if rec.Interface != "" {
		a.interfaces.Inc(rec.Interface)
	}
	if rec.Facility != "" {
		a.facilities.Inc(rec.Facility)
	}
	if rec.StatusCode > 0 {
		a.statuses.Inc(strconv.Itoa(rec.StatusCode))
	}
	return nil
}

// Merge adds the partial aggregate of another accumulating Aggregator of
// the same format. Counts are commutative, so parallel chunks can be
// combined this way before Finalize.
func (a *Aggregator) Merge(other *Aggregator) error {
	if a.state == stateFinalized || other.state == stateFinalized {
		return ErrFinalized
	}
	if a.format != other.format {
		return ErrFormatMismatch
	}
	if other.state == stateEmpty {
		return nil
	}
	a.state = stateAccumulating

	a.total += other.total
	a.errors += other.errors
	a.warnings += other.warnings
	a.infos += other.infos

	a.ips.Merge(other.ips)
	a.urls.Merge(other.urls)
	a.hostnames.Merge(other.hostnames)
	a.processes.Merge(other.processes)
	a.processIDs.Merge(other.processIDs)
	a.interfaces.Merge(other.interfaces)
	a.facilities.Merge(other.facilities)
	a.statuses.Merge(other.statuses)
	return nil
}

// Finalize truncates every table to the configured top-K and returns the
// result. Idempotent: repeated calls return the same snapshot without
// double-counting.
func (a *Aggregator) Finalize() *model.AnalysisResult {
	if a.state == stateFinalized {
		return a.snapshot
	}
	a.state = stateFinalized

	res := &model.AnalysisResult{
		TotalEntries:   a.total,
		ErrorCount:     a.errors,
		WarningCount:   a.warnings,
		InfoCount:      a.infos,
		DetectedFormat: a.format,
		TopIPs:         a.ips.Top(a.topK),
		TopURLs:        a.urls.Top(a.topK),
		TopHostnames:   a.hostnames.Top(a.topK),
		TopProcesses:   a.processes.Top(a.topK),
		TopProcessIDs:  a.processIDs.Top(a.topK),
		TopInterfaces:  a.interfaces.Top(a.topK),
		TopFacilities:  a.facilities.Top(a.topK),
		AnalyzedAt:     time.Now().UTC(),
	}
	if a.statuses.Len() > 0 {
		res.StatusCodes = make(map[string]int)
		for _, e := range a.statuses.Top(a.topK) {
			res.StatusCodes[e.Key] = e.Count
		}
	}
	a.snapshot = res
	return res
}
