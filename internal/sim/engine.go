// Package sim implements the simulation cycle engine: pairing, conversation
// processing, relationship resolution, confessionals and persistence of one
// discrete villa tick.
package sim

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/dotslashsimran/ai-love-island/internal/metrics"
	"github.com/dotslashsimran/ai-love-island/internal/models"
	"go.uber.org/atomic"
)

// ErrCycleInProgress is returned when a cycle is triggered while a previous
// one is still running. Overlapping cycles would double-mutate character
// state, so only one runs at a time.
var ErrCycleInProgress = errors.New("simulation cycle already in progress")

// recentInteractionLimit is how much history feeds the decision prompts.
const recentInteractionLimit = 50

// CycleResult aggregates everything one cycle created.
type CycleResult struct {
	Interactions  []models.Interaction
	Events        []models.TimelineEvent
	Confessionals []models.Confessional
	Conversations []models.Conversation
}

// Engine orchestrates simulation cycles. Safe for concurrent RunCycle
// calls; all but one will fail fast with ErrCycleInProgress.
type Engine struct {
	store   Store
	oracle  Oracle
	rng     Rand
	seed    []models.Character
	logger  *slog.Logger
	metrics *metrics.Collector

	inFlight atomic.Bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the randomness source, for deterministic tests.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed replaces the built-in cast used when the store is empty.
func WithSeed(cast []models.Character) Option {
	return func(e *Engine) { e.seed = cast }
}

// WithMetrics attaches a metrics collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(e *Engine) { e.metrics = c }
}

// NewEngine creates a cycle engine over the given store and oracle.
func NewEngine(store Store, oracle Oracle, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		oracle: oracle,
		rng:    systemRand{},
		seed:   models.SeedCharacters(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunCycle advances the villa one tick: load state, pair everyone up, run
// the paired conversations, resolve couplings and breakups, send a couple
// of characters to the confessional booth, then persist everything. A
// pairing or write failing is logged and skipped; the cycle itself only
// fails when another cycle is already in flight.
func (e *Engine) RunCycle(ctx context.Context) (*CycleResult, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCycleInProgress
	}
	defer e.inFlight.Store(false)

	start := time.Now()
	defer func() {
		e.metrics.RecordTiming(metrics.OpCycle, time.Since(start))
	}()

	chars, err := e.store.LoadCharacters(ctx)
	if err != nil || len(chars) == 0 {
		if err != nil {
			e.logger.Error("loading characters failed, falling back to seed cast", "error", err)
		}
		chars = cloneCast(e.seed)
	}

	recent, err := e.store.LoadRecentInteractions(ctx, recentInteractionLimit)
	if err != nil {
		e.logger.Warn("loading recent interactions failed", "error", err)
		recent = nil
	}

	st := newCycleState(chars)
	st.addEvents(newEvent(time.Now().Add(-time.Second), models.EventShift, []string{},
		pick(e.rng, cycleOpeningLines)))

	// First-pass pairings share no participants, so their conversations run
	// concurrently. Second-pass pairings may re-use a participant and only
	// start after the first pass has fully settled.
	firstPass, secondPass := e.buildPairings(st.all())

	var wg sync.WaitGroup
	for _, p := range firstPass {
		wg.Add(1)
		go func(p pairing) {
			defer wg.Done()
			e.runConversation(ctx, st, p)
		}(p)
	}
	wg.Wait()

	for _, p := range secondPass {
		e.runConversation(ctx, st, p)
	}

	e.resolveRelationships(st)
	e.runConfessionals(ctx, st, recent)

	sort.SliceStable(st.events, func(i, j int) bool {
		return st.events[i].Timestamp.Before(st.events[j].Timestamp)
	})

	e.persist(ctx, st)

	e.logger.Info("cycle complete",
		"conversations", len(st.conversations),
		"interactions", len(st.interactions),
		"events", len(st.events),
		"confessionals", len(st.confessionals),
		"duration", time.Since(start))

	return &CycleResult{
		Interactions:  st.interactions,
		Events:        st.events,
		Confessionals: st.confessionals,
		Conversations: st.conversations,
	}, nil
}

// persist writes the cycle's characters and records with per-record
// isolation: one failed write is logged and the rest still go through.
func (e *Engine) persist(ctx context.Context, st *cycleState) {
	for _, c := range st.all() {
		e.write("character", c.ID, func() error {
			return e.store.SaveCharacter(ctx, *c)
		})
	}
	for _, in := range st.interactions {
		e.write("interaction", in.ID, func() error {
			return e.store.AppendInteraction(ctx, in)
		})
	}
	for _, ev := range st.events {
		e.write("timeline_event", ev.ID, func() error {
			return e.store.AppendTimelineEvent(ctx, ev)
		})
	}
	for _, conf := range st.confessionals {
		e.write("confessional", conf.ID, func() error {
			return e.store.AppendConfessional(ctx, conf)
		})
	}
	for _, conv := range st.conversations {
		e.write("conversation", conv.ID, func() error {
			return e.store.AppendConversation(ctx, conv)
		})
	}
}

func (e *Engine) write(kind, id string, fn func() error) {
	start := time.Now()
	if err := fn(); err != nil {
		e.metrics.RecordFailure(metrics.OpDBWrite)
		e.logger.Error("persist failed", "kind", kind, "id", id, "error", err)
		return
	}
	e.metrics.RecordTiming(metrics.OpDBWrite, time.Since(start))
}

func cloneCast(cast []models.Character) []models.Character {
	out := make([]models.Character, len(cast))
	for i := range cast {
		out[i] = *cast[i].Clone()
	}
	return out
}
