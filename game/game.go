package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/events"
	"github.com/lazharichir/solitaire/tableau"
	"github.com/sanity-io/litter"
	"go.uber.org/zap"
)

// GamePhase represents where a game is in its lifecycle
type GamePhase string

const (
	PhaseNotStarted GamePhase = "not_started"
	PhaseInProgress GamePhase = "in_progress"
)

var (
	ErrNotStarted     = errors.New("game has not started")
	ErrAlreadyStarted = errors.New("game has already started")
	ErrCardNotInStack = errors.New("card not found")
)

// Game ties a deck and the tableau together. It validates moves against the
// tableau rules and records every change as an event.
type Game struct {
	ID    string
	Seed  int64
	Phase GamePhase

	// Events is the game's own log, oldest first
	Events []events.Event

	deck          *cards.Deck
	tableau       *tableau.Manager
	store         events.EventStore
	eventHandlers []events.EventHandler
	logger        *zap.Logger
	now           func() time.Time
}

// Option configures a new game
type Option func(*Game)

// WithSeed fixes the shuffle. A zero seed is replaced by a time based one.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.Seed = seed }
}

// WithEventStore appends every event the game emits to store
func WithEventStore(store events.EventStore) Option {
	return func(g *Game) { g.store = store }
}

// WithID overrides the generated game ID
func WithID(id string) Option {
	return func(g *Game) { g.ID = id }
}

// New creates a game that has not been dealt yet
func New(logger *zap.Logger, opts ...Option) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		ID:            uuid.NewString(),
		Phase:         PhaseNotStarted,
		Events:        []events.Event{},
		tableau:       tableau.NewManager(),
		eventHandlers: []events.EventHandler{},
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Seed == 0 {
		g.Seed = time.Now().UnixNano()
	}
	g.logger = logger.With(zap.String("game_id", g.ID))
	return g
}

// Start shuffles a fresh deck and deals the tableau
func (g *Game) Start() error {
	if g.Phase != PhaseNotStarted {
		return ErrAlreadyStarted
	}

	started := events.GameStarted{GameID: g.ID, Seed: g.Seed, At: g.now()}
	if err := g.applyGameStarted(started); err != nil {
		return err
	}

	g.logger.Info("Game started", zap.Int64("seed", g.Seed), zap.Int("deck_size", g.deck.Size()))
	g.emitEvent(started)
	g.emitEvent(events.TableauDealt{GameID: g.ID, Remaining: g.deck.Size()})

	return nil
}

// Move moves card and every card above it from one working stack to another
func (g *Game) Move(card cards.Card, from, to tableau.StackIndex) error {
	if g.Phase != PhaseInProgress {
		return ErrNotStarted
	}
	if !from.Valid() || !to.Valid() {
		return tableau.ErrInvalidStack
	}
	if index, ok := g.tableau.StackOf(card); !ok || index != from {
		return fmt.Errorf("%w: %s in %s stack", ErrCardNotInStack, card, from)
	}

	under, hasUnder := g.tableau.PreviousCard(card)
	underWasHidden := hasUnder && !g.tableau.IsVisible(under)

	moved := events.SequenceMoved{
		GameID: g.ID,
		Cards:  g.tableau.Sequence(card, from),
		From:   from,
		To:     to,
		At:     g.now(),
	}
	if err := g.applySequenceMoved(moved); err != nil {
		g.logger.Debug("Move rejected",
			zap.Stringer("card", card),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Error(err))
		return err
	}

	g.emitEvent(moved)
	if underWasHidden && g.tableau.IsVisible(under) {
		g.emitEvent(events.CardRevealed{GameID: g.ID, Card: under, Stack: from})
	}

	return nil
}

// CanMoveTo checks if card could be placed on the stack at index.
// It is false for an invalid index.
func (g *Game) CanMoveTo(card cards.Card, index tableau.StackIndex) bool {
	if !index.Valid() {
		return false
	}
	return g.tableau.CanMoveTo(card, index)
}

// View returns a copy of the seven working stacks
func (g *Game) View() [tableau.NumStacks][]tableau.CardView {
	var view [tableau.NumStacks][]tableau.CardView
	for _, index := range tableau.StackIndices() {
		view[index] = g.tableau.Stack(index)
	}
	return view
}

// DeckSize returns the number of cards not dealt to the tableau
func (g *Game) DeckSize() int {
	if g.deck == nil {
		return 0
	}
	return g.deck.Size()
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (g *Game) RegisterEventHandler(handler events.EventHandler) {
	g.eventHandlers = append(g.eventHandlers, handler)
}

// emitEvent records the event and notifies the store and all handlers
func (g *Game) emitEvent(event events.Event) {
	g.Events = append(g.Events, event)

	if g.logger.Core().Enabled(zap.DebugLevel) {
		g.logger.Debug("Game event", zap.String("event", event.Name()), zap.String("payload", litter.Sdump(event)))
	}

	if g.store != nil {
		if err := g.store.Append(event); err != nil {
			g.logger.Warn("Failed to store event", zap.String("event", event.Name()), zap.Error(err))
		}
	}

	for _, handler := range g.eventHandlers {
		handler(event)
	}
}

func (g *Game) String() string {
	return fmt.Sprintf("game %s (%s, seed %d)", g.ID, g.Phase, g.Seed)
}
