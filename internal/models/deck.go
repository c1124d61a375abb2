package models

import "errors"

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
// Dealer auto-play treats it as "stand"; it is never surfaced to callers.
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is the ordered sequence of undealt cards for one game. Cards are
// consumed from the front and the deck is never replenished mid-game.
type Deck struct {
	Cards []Card
}

// Draw removes and returns the front card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Size returns the number of undealt cards.
func (d *Deck) Size() int {
	return len(d.Cards)
}
