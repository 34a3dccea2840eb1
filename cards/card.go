package cards

import "fmt"

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Rank: Ten, Suit: Spades}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// Unicode suit symbols take three bytes, letters one.
	suitPart, rankPart := s[len(s)-1:], s[:len(s)-1]
	if len(s) > 3 {
		for _, sym := range []Suit{Spades, Hearts, Diamonds, Clubs} {
			if s[len(s)-len(sym):] == string(sym) {
				suitPart, rankPart = string(sym), s[:len(s)-len(sym)]
				break
			}
		}
	}

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitPart)
	}

	rank, err := RankFromString(rankPart)
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is CardFromString for literals known to be valid. It panics otherwise.
func MustCard(s string) Card {
	c, err := CardFromString(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
	Hearts   Suit = "♥"
	Spades   Suit = "♠"
)

// Suits lists the four suits in deck order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Color returns the color of the suit
func (s Suit) Color() Color {
	switch s {
	case Diamonds, Hearts:
		return Red
	default:
		return Black
	}
}

// Color is the color of a suit
type Color string

const (
	Red   Color = "red"
	Black Color = "black"
)

// Rank represents a card rank, ordered from Ace to King
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks lists the thirteen ranks from Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// RankFromString parses a rank shorthand such as "A", "10" or "k"
func RankFromString(s string) (Rank, error) {
	switch s {
	case "A", "a", "1":
		return Ace, nil
	case "K", "k":
		return King, nil
	case "Q", "q":
		return Queen, nil
	case "J", "j":
		return Jack, nil
	case "10", "T", "t":
		return Ten, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("invalid card rank: %s", s)
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Color returns the color of the card's suit
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// SameColorAs reports whether both cards are red or both are black
func (c Card) SameColorAs(other Card) bool {
	return c.Color() == other.Color()
}

// IsKing checks if the card is a king
func (c Card) IsKing() bool {
	return c.Rank == King
}

// IsZero reports whether c is the zero Card, which is not a playing card
func (c Card) IsZero() bool {
	return c == Card{}
}
