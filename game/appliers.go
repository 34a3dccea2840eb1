package game

import (
	"errors"
	"fmt"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/events"
	"go.uber.org/zap"
)

// Rehydrate rebuilds a game from its event history. The returned game keeps
// appending to store.
func Rehydrate(store events.EventStore, gameID string, logger *zap.Logger) (*Game, error) {
	history, err := store.LoadEvents(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no events for game %s", gameID)
	}

	var started events.GameStarted
	switch e := history[0].(type) {
	case events.GameStarted:
		started = e
	case *events.GameStarted:
		started = *e
	default:
		return nil, fmt.Errorf("game %s: first event is %s, want GAME_STARTED", gameID, history[0].Name())
	}

	g := New(logger, WithID(gameID), WithSeed(started.Seed), WithEventStore(store))
	for _, event := range history {
		if err := g.applyEvent(event); err != nil {
			return nil, fmt.Errorf("failed to apply %s: %w", event.Name(), err)
		}
		g.Events = append(g.Events, event)
	}

	return g, nil
}

// applyEvent dispatches events to their appropriate handlers
func (g *Game) applyEvent(event events.Event) error {
	switch e := event.(type) {
	case events.GameStarted:
		return g.applyGameStarted(e)
	case *events.GameStarted:
		return g.applyGameStarted(*e)
	case events.SequenceMoved:
		return g.applySequenceMoved(e)
	case *events.SequenceMoved:
		return g.applySequenceMoved(*e)
	case events.TableauDealt, *events.TableauDealt, events.CardRevealed, *events.CardRevealed:
		// follow from the events above
		return nil
	default:
		g.logger.Warn("Unknown event type", zap.String("type", fmt.Sprintf("%T", e)))
		return fmt.Errorf("unknown event type %T", e)
	}
}

func (g *Game) applyGameStarted(e events.GameStarted) error {
	if g.Phase != PhaseNotStarted {
		return ErrAlreadyStarted
	}

	g.Seed = e.Seed
	g.deck = cards.NewDeck(cards.WithSeed(e.Seed))
	g.deck.Shuffle()
	if err := g.tableau.Initialize(g.deck); err != nil {
		return fmt.Errorf("failed to deal tableau: %w", err)
	}

	g.Phase = PhaseInProgress
	return nil
}

func (g *Game) applySequenceMoved(e events.SequenceMoved) error {
	if g.Phase != PhaseInProgress {
		return ErrNotStarted
	}
	if len(e.Cards) == 0 {
		return errors.New("move has no cards")
	}

	return g.tableau.MoveWithin(e.Cards[0], e.From, e.To)
}
