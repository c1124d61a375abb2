package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Suit is the one-character suit token of a card
type Suit string

const (
	SuitHearts   Suit = "H"
	SuitDiamonds Suit = "D"
	SuitClubs    Suit = "C"
	SuitSpades   Suit = "S"
)

// Rank is the rank token of a card ("A", "2".."10", "J", "Q", "K")
type Rank string

const (
	RankAce   Rank = "A"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

// Suits lists the four suits in a fixed order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Ranks lists the thirteen ranks in a fixed order
var Ranks = []Rank{
	RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
	RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
}

// rankValues maps each rank to its pip value. Aces count high here; the
// low-value adjustment happens during hand evaluation.
var rankValues = map[Rank]int{
	RankAce: 11, RankTwo: 2, RankThree: 3, RankFour: 4, RankFive: 5,
	RankSix: 6, RankSeven: 7, RankEight: 8, RankNine: 9, RankTen: 10,
	RankJack: 10, RankQueen: 10, RankKing: 10,
}

// ErrInvalidCardToken is returned when parsing a malformed card token
var ErrInvalidCardToken = errors.New("invalid card token")

// Card is a playing card. Cards are immutable value objects; two cards are
// equal when rank and suit match.
type Card struct {
	Rank Rank
	Suit Suit
}

// Value returns the pip value of the card (2-9 face value, tens and court
// cards 10, ace 11).
func (c Card) Value() int {
	return rankValues[c.Rank]
}

// IsAce reports whether the card is an ace of any suit.
func (c Card) IsAce() bool {
	return c.Rank == RankAce
}

// String returns the card's wire token: rank followed by suit, e.g. "AH"
// or "10D".
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// ParseCard parses a rank+suit token such as "KC" or "10S".
func ParseCard(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	rank := Rank(token[:len(token)-1])
	suit := Suit(token[len(token)-1:])

	if _, ok := rankValues[rank]; !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	switch suit {
	case SuitHearts, SuitDiamonds, SuitClubs, SuitSpades:
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MarshalJSON encodes the card as its wire token so persisted hands and
// decks read as lists of tokens ("AH", "10D", ...).
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card from its wire token.
func (c *Card) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}

	card, err := ParseCard(token)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// Hand is an ordered sequence of cards. Insertion order is deal order; it
// matters for display only, never for the hand's value.
type Hand []Card

// Tokens returns the hand's cards as wire tokens, in deal order.
func (h Hand) Tokens() []string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}
	return tokens
}
