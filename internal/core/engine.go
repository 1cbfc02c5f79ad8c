// Package core is the facade that ties the parser, reducer, store, and
// ranker together: ingest new submissions, replay the log at startup, and
// answer queries against a single consistent snapshot of state.
package core

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tOgg1/ranksort/internal/dsl"
	"github.com/tOgg1/ranksort/internal/logging"
	"github.com/tOgg1/ranksort/internal/rank"
	"github.com/tOgg1/ranksort/internal/state"
	"github.com/tOgg1/ranksort/internal/store"
)

// IngestResult describes a successfully accepted submission.
type IngestResult struct {
	AcceptedStatements int    `json:"accepted_statements"`
	SourceFilename     string `json:"source_filename"`
}

// ReplayResult summarizes a startup replay.
type ReplayResult struct {
	Total   int          `json:"total"`
	Applied int          `json:"applied"`
	Skipped []ReplaySkip `json:"skipped,omitempty"`
}

// ReplaySkip records why one log entry was not applied during replay.
type ReplaySkip struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// Engine is the single mutable State for a process, plus the gate that
// serializes every mutation (Ingest) and every read that needs a
// consistent items+votes snapshot (Rank, Compare, ListHashtags).
type Engine struct {
	mu      sync.Mutex
	store   *store.Store
	reducer *state.Reducer
	logger  zerolog.Logger
}

// NewEngine returns an Engine backed by st, with an empty in-memory state.
// Call Replay to rebuild state from an existing log.
func NewEngine(st *store.Store) *Engine {
	return &Engine{
		store:   st,
		reducer: state.NewReducer(),
		logger:  logging.Component("core"),
	}
}

// Ingest parses, appends, and reduces one submission. On a reducer
// rejection the log append is rolled back so replay never observes it.
func (e *Engine) Ingest(from string, timestampMs int64, subject, body string) (*IngestResult, error) {
	doc, err := dsl.ParseFiltered(body)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(doc.Statements) == 0 {
		return nil, ErrNoDSLContent
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	filename, err := e.store.Append(subject, body, from)
	if err != nil {
		return nil, fmt.Errorf("append: %w", err)
	}

	sourceLog := logging.WithSourceFile(filename)

	timestamp := strconv.FormatInt(timestampMs, 10)
	if err := e.reducer.ProcessDocument(doc, timestamp, from, filename); err != nil {
		if rmErr := e.store.Remove(filename); rmErr != nil {
			sourceLog.Error().Err(rmErr).Msg("failed to roll back rejected submission")
		}
		// err may quote submission-controlled text (item titles, explanations)
		// back in its message; redact before it reaches the log.
		sourceLog.Warn().Str("reason", logging.Redact(err.Error())).Msg("rejected submission")
		return nil, fmt.Errorf("reduce: %w", err)
	}

	sourceLog.Info().
		Int("statements", len(doc.Statements)).
		Msg("ingested submission")

	return &IngestResult{
		AcceptedStatements: len(doc.Statements),
		SourceFilename:     filename,
	}, nil
}

// Replay rebuilds state from every record in the log, in filename order.
// Malformed entries are counted and skipped rather than aborting the run.
func (e *Engine) Replay() (*ReplayResult, error) {
	records, err := e.store.Replay()
	if err != nil {
		return nil, fmt.Errorf("enumerate log: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.reducer = state.NewReducer()
	result := &ReplayResult{Total: len(records)}

	for _, rec := range records {
		sourceLog := logging.WithSourceFile(rec.Filename)

		doc, err := dsl.ParseFiltered(rec.Body)
		if err != nil {
			result.Skipped = append(result.Skipped, ReplaySkip{Filename: rec.Filename, Reason: err.Error()})
			sourceLog.Warn().Str("reason", logging.Redact(err.Error())).Msg("skipping unparseable record during replay")
			continue
		}
		if len(doc.Statements) == 0 {
			continue
		}
		if err := e.reducer.ProcessDocument(doc, rec.Timestamp, rec.From, rec.Filename); err != nil {
			result.Skipped = append(result.Skipped, ReplaySkip{Filename: rec.Filename, Reason: err.Error()})
			sourceLog.Warn().Str("reason", logging.Redact(err.Error())).Msg("skipping rejected record during replay")
			continue
		}
		result.Applied++
	}

	e.logger.Info().Int("total", result.Total).Int("applied", result.Applied).
		Int("skipped", len(result.Skipped)).Msg("replay complete")
	return result, nil
}

// Rank computes rankings for hashtag/attribute under a consistent snapshot.
func (e *Engine) Rank(hashtag, attribute string) []rank.Ranking {
	e.mu.Lock()
	defer e.mu.Unlock()
	logging.WithHashtag(hashtag).Debug().Str("attribute", attribute).Msg("computing rankings")
	return rank.ComputeRankings(e.reducer.State(), hashtag, attribute)
}

// Compare aggregates preference weight between two items under attribute.
func (e *Engine) Compare(item1, item2, attribute string) (rank.CompareResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	logging.WithAttribute(attribute).Debug().Msg("comparing items")
	return rank.Compare(e.reducer.State(), item1, item2, attribute)
}

// ListHashtags returns per-hashtag statistics under a consistent snapshot.
func (e *Engine) ListHashtags() []rank.HashtagStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return rank.ListHashtags(e.reducer.State())
}

// State returns the engine's live state snapshot pointer. Callers must not
// mutate the returned value; it is shared with the engine under the gate.
func (e *Engine) State() *state.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reducer.State()
}
