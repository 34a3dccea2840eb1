package game

import (
	"errors"
	"testing"

	"github.com/lazharichir/solitaire/cards"
	"github.com/lazharichir/solitaire/events"
	"github.com/lazharichir/solitaire/tableau"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// scriptedDealer deals the given cards first, then the rest of a sorted deck
type scriptedDealer struct {
	cards cards.Stack
}

func newScriptedDealer(first ...cards.Card) *scriptedDealer {
	d := &scriptedDealer{cards: cards.NewStack(first...)}
	for _, c := range cards.AllCards() {
		if !d.cards.Contains(c) {
			d.cards.Push(c)
		}
	}
	return d
}

func (d *scriptedDealer) Draw() (cards.Card, error) {
	if len(d.cards) == 0 {
		return cards.Card{}, cards.ErrEmptyDeck
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// MockEventStore implements the EventStore interface for testing
type MockEventStore struct {
	events map[string][]events.Event
	err    error
}

func NewMockEventStore() *MockEventStore {
	return &MockEventStore{
		events: make(map[string][]events.Event),
	}
}

func (m *MockEventStore) Append(event events.Event) error {
	if m.err != nil {
		return m.err
	}
	gameID := events.GetGameID(event)
	m.events[gameID] = append(m.events[gameID], event)
	return nil
}

func (m *MockEventStore) LoadEvents(gameID string) ([]events.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events[gameID], nil
}

var (
	c5D = cards.MustCard("5D")
	cKH = cards.MustCard("KH")
	c4C = cards.MustCard("4C")
)

// startScripted starts g and replaces the shuffled tableau with a known one:
// first stack 5♦, second stack K♥ (face down) under 4♣.
func startScripted(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.Start())
	require.NoError(t, g.tableau.Initialize(newScriptedDealer(c5D, cKH, c4C)))
}

func eventNames(evs []events.Event) []string {
	names := make([]string, len(evs))
	for i, e := range evs {
		names[i] = e.Name()
	}
	return names
}

func TestStart(t *testing.T) {
	g := New(zap.NewNop(), WithSeed(42))
	assert.Equal(t, PhaseNotStarted, g.Phase)
	assert.NotEmpty(t, g.ID)

	require.NoError(t, g.Start())
	assert.Equal(t, PhaseInProgress, g.Phase)
	assert.Equal(t, 24, g.DeckSize())

	view := g.View()
	for _, index := range tableau.StackIndices() {
		assert.Len(t, view[index], int(index)+1)
	}

	assert.Equal(t, []string{"GAME_STARTED", "TABLEAU_DEALT"}, eventNames(g.Events))
	started := g.Events[0].(events.GameStarted)
	assert.Equal(t, int64(42), started.Seed)
	assert.Equal(t, g.ID, started.GameID)
	assert.Equal(t, 24, g.Events[1].(events.TableauDealt).Remaining)

	assert.ErrorIs(t, g.Start(), ErrAlreadyStarted)
}

func TestStart_SameSeedSameDeal(t *testing.T) {
	a := New(nil, WithSeed(1234))
	b := New(nil, WithSeed(1234))
	require.NoError(t, a.Start())
	require.NoError(t, b.Start())

	assert.Equal(t, a.View(), b.View())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_RandomSeed(t *testing.T) {
	g := New(nil)
	assert.NotZero(t, g.Seed)
	assert.Zero(t, g.DeckSize())
}

func TestMove(t *testing.T) {
	store := NewMockEventStore()
	g := New(zap.NewNop(), WithEventStore(store))
	startScripted(t, g)

	var handled []string
	g.RegisterEventHandler(func(e events.Event) { handled = append(handled, e.Name()) })

	assert.True(t, g.CanMoveTo(c4C, tableau.First))
	require.NoError(t, g.Move(c4C, tableau.Second, tableau.First))

	view := g.View()
	require.Len(t, view[tableau.First], 2)
	assert.Equal(t, c4C, view[tableau.First][1].Card)
	require.Len(t, view[tableau.Second], 1)
	assert.True(t, view[tableau.Second][0].Visible, "K♥ should be turned face up")

	assert.Equal(t, []string{"SEQUENCE_MOVED", "CARD_REVEALED"}, handled)
	revealed := g.Events[len(g.Events)-1].(events.CardRevealed)
	assert.Equal(t, cKH, revealed.Card)
	assert.Equal(t, tableau.Second, revealed.Stack)

	moved := g.Events[len(g.Events)-2].(events.SequenceMoved)
	assert.Equal(t, cards.NewStack(c4C), moved.Cards)
	assert.Equal(t, tableau.Second, moved.From)
	assert.Equal(t, tableau.First, moved.To)

	assert.Len(t, store.events[g.ID], 4)
}

func TestMove_Errors(t *testing.T) {
	g := New(nil)
	assert.ErrorIs(t, g.Move(c4C, tableau.Second, tableau.First), ErrNotStarted)

	startScripted(t, g)
	before := len(g.Events)

	tests := []struct {
		name    string
		card    cards.Card
		from    tableau.StackIndex
		to      tableau.StackIndex
		wantErr error
	}{
		{"invalid origin", c4C, tableau.StackIndex(-1), tableau.First, tableau.ErrInvalidStack},
		{"invalid destination", c4C, tableau.Second, tableau.StackIndex(7), tableau.ErrInvalidStack},
		{"card in another stack", c4C, tableau.Third, tableau.First, ErrCardNotInStack},
		{"face down card", cKH, tableau.Second, tableau.Fourth, tableau.ErrCardNotVisible},
		{"illegal destination", c5D, tableau.First, tableau.Second, tableau.ErrIllegalMove},
		{"same stack", c4C, tableau.Second, tableau.Second, tableau.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.Move(tt.card, tt.from, tt.to)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Len(t, g.Events, before, "rejected moves emit no events")
}

func TestMove_LogsRejectedMoves(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := New(zap.New(core))
	startScripted(t, g)

	assert.Error(t, g.Move(c5D, tableau.First, tableau.Second))
	rejected := logs.FilterMessage("Move rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "5♦", rejected[0].ContextMap()["card"])
	assert.NotEmpty(t, logs.FilterMessage("Game event").All(), "events are dumped at debug level")
}

func TestEmitEvent_StoreFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	store := NewMockEventStore()
	store.err = errors.New("disk full")

	g := New(zap.New(core), WithEventStore(store))
	require.NoError(t, g.Start())

	assert.Len(t, g.Events, 2, "the game's own log is kept")
	assert.Equal(t, 2, logs.FilterMessage("Failed to store event").Len())
}

func TestLegalMoves(t *testing.T) {
	g := New(nil)
	assert.Nil(t, g.LegalMoves())

	startScripted(t, g)
	moves := g.LegalMoves()
	assert.Contains(t, moves, Move{Card: c4C, From: tableau.Second, To: tableau.First})

	for _, m := range moves {
		assert.NotEqual(t, m.From, m.To)
		assert.True(t, g.CanMoveTo(m.Card, m.To), "%s", m)
	}
}

func TestLegalMoves_SkipsBottomKingToEmptyStack(t *testing.T) {
	g := New(nil)
	startScripted(t, g)
	require.NoError(t, g.Move(c4C, tableau.Second, tableau.First))
	// Second stack is now a lone K♥. Empty the first stack so an empty target exists.
	g.tableau.Pop(c5D)

	for _, m := range g.LegalMoves() {
		assert.False(t, m.Card.Equals(cKH) && m.To == tableau.First, "unexpected %s", m)
	}
}

func TestHandle(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.Handle(StartCommand{}))
	require.NoError(t, g.tableau.Initialize(newScriptedDealer(c5D, cKH, c4C)))

	cmd, err := ParseMoveCommand("4C:2:1")
	require.NoError(t, err)
	assert.Equal(t, MoveCommand{CardShorthand: "4C", From: 2, To: 1}, cmd)
	require.NoError(t, g.Handle(cmd))
	assert.Len(t, g.View()[tableau.First], 2)

	assert.Error(t, g.Handle(MoveCommand{CardShorthand: "XX", From: 1, To: 2}))
	assert.Error(t, g.Handle(MoveCommand{CardShorthand: "4C", From: 0, To: 2}))
	assert.Error(t, g.Handle(MoveCommand{CardShorthand: "4C", From: 1, To: 8}))
	assert.Error(t, g.Handle(nil))
}

func TestParseMoveCommand_Errors(t *testing.T) {
	for _, s := range []string{"", "4C", "4C:1", "4C:a:2", "4C:1:b", "4C:1:2:3"} {
		_, err := ParseMoveCommand(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestRehydrate(t *testing.T) {
	store := events.NewInMemoryEventStore()
	g := New(nil, WithSeed(99), WithEventStore(store))
	require.NoError(t, g.Start())

	for i := 0; i < 3; i++ {
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		require.NoError(t, g.Move(moves[0].Card, moves[0].From, moves[0].To))
	}

	restored, err := Rehydrate(store, g.ID, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, g.ID, restored.ID)
	assert.Equal(t, g.Seed, restored.Seed)
	assert.Equal(t, PhaseInProgress, restored.Phase)
	assert.Equal(t, g.View(), restored.View())
	assert.Equal(t, eventNames(g.Events), eventNames(restored.Events))
}

func TestRehydrate_PointerEvents(t *testing.T) {
	var g *Game
	for s := int64(1); s <= 200; s++ {
		g = New(nil, WithSeed(s))
		require.NoError(t, g.Start())
		if moves := g.LegalMoves(); len(moves) > 0 {
			require.NoError(t, g.Move(moves[0].Card, moves[0].From, moves[0].To))
			break
		}
	}
	require.Greater(t, len(g.Events), 2, "expected a deal with at least one legal move")

	store := events.NewInMemoryEventStore()
	for _, event := range g.Events {
		switch e := event.(type) {
		case events.GameStarted:
			require.NoError(t, store.Append(&e))
		case events.TableauDealt:
			require.NoError(t, store.Append(&e))
		case events.SequenceMoved:
			require.NoError(t, store.Append(&e))
		case events.CardRevealed:
			require.NoError(t, store.Append(&e))
		default:
			t.Fatalf("unexpected event %T", e)
		}
	}

	restored, err := Rehydrate(store, g.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, g.View(), restored.View())
	assert.Equal(t, eventNames(g.Events), eventNames(restored.Events))
}

type unknownEvent struct{ GameID string }

func (unknownEvent) Name() string { return "UNKNOWN" }

func TestRehydrate_UnknownEvent(t *testing.T) {
	store := events.NewInMemoryEventStore()
	require.NoError(t, store.Append(events.GameStarted{GameID: "g1", Seed: 7}))
	require.NoError(t, store.Append(unknownEvent{GameID: "g1"}))

	_, err := Rehydrate(store, "g1", nil)
	assert.ErrorContains(t, err, "unknown event type")
}

func TestCanMoveTo_InvalidIndex(t *testing.T) {
	g := New(nil)
	startScripted(t, g)

	assert.NotPanics(t, func() {
		assert.False(t, g.CanMoveTo(c4C, tableau.StackIndex(-1)))
		assert.False(t, g.CanMoveTo(cKH, tableau.NumStacks))
	})
}

func TestRehydrate_Errors(t *testing.T) {
	store := events.NewInMemoryEventStore()
	_, err := Rehydrate(store, "missing", nil)
	assert.Error(t, err)

	require.NoError(t, store.Append(events.TableauDealt{GameID: "bad", Remaining: 24}))
	_, err = Rehydrate(store, "bad", nil)
	assert.Error(t, err)

	failing := NewMockEventStore()
	failing.err = errors.New("unavailable")
	_, err = Rehydrate(failing, "any", nil)
	assert.Error(t, err)
}
