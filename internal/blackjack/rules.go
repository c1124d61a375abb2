// Package blackjack holds the pure rules of the game: hand evaluation,
// move parsing, and the state transitions applied to a single game. It
// performs no I/O; orchestration (load, lock, save, settle) lives in the
// game service.
package blackjack

import (
	"strings"

	"github.com/alaw810/blackjack-engine/internal/models"
)

const (
	// blackjackValue is the target total
	blackjackValue = 21

	// dealerStandValue is the total at which the dealer stops drawing
	dealerStandValue = 17

	// aceAdjustment is subtracted once per ace counted low instead of high
	aceAdjustment = 10
)

// HandValue computes the blackjack total of a hand. Aces start at 11 and
// are downgraded to 1, one at a time, while the total exceeds 21. The
// result does not depend on card order.
func HandValue(hand models.Hand) int {
	total := 0
	aces := 0

	for _, card := range hand {
		total += card.Value()
		if card.IsAce() {
			aces++
		}
	}

	for total > blackjackValue && aces > 0 {
		total -= aceAdjustment
		aces--
	}

	return total
}

// IsNaturalBlackjack reports whether the hand is a natural: exactly two
// cards totaling 21.
func IsNaturalBlackjack(hand models.Hand) bool {
	return len(hand) == 2 && HandValue(hand) == blackjackValue
}

// Move is a player action token
type Move string

const (
	// MoveHit draws one card into the player hand
	MoveHit Move = "HIT"

	// MoveStand ends the player's turn and runs dealer play
	MoveStand Move = "STAND"

	// MoveDouble draws exactly one card and then stands
	MoveDouble Move = "DOUBLE"
)

// ParseMove normalizes a move token (trimmed, case-insensitive). The
// second return value is false for anything other than the three
// recognized moves.
func ParseMove(token string) (Move, bool) {
	switch Move(strings.ToUpper(strings.TrimSpace(token))) {
	case MoveHit:
		return MoveHit, true
	case MoveStand:
		return MoveStand, true
	case MoveDouble:
		return MoveDouble, true
	default:
		return "", false
	}
}

// MoveOutcome tags what the caller must do after a move is applied
type MoveOutcome int

const (
	// OutcomeNoOp means the game was not in progress and nothing changed
	OutcomeNoOp MoveOutcome = iota

	// OutcomeContinue means the hand changed but the game is still open;
	// save the game, no settlement
	OutcomeContinue

	// OutcomeSettled means the game reached a terminal status; save the
	// game and update the owning player's record
	OutcomeSettled
)

// Apply advances a game by one move, mutating the game's hands, deck and
// status in memory. The returned outcome tells the caller whether the
// player record needs settling. Drawing for the player from an exhausted
// deck returns models.ErrEmptyDeck; dealer play never does (the dealer
// stands when the deck runs out).
func Apply(game *models.Game, move Move) (MoveOutcome, error) {
	if !game.InProgress() {
		return OutcomeNoOp, nil
	}

	switch move {
	case MoveHit:
		if err := drawPlayerCard(game); err != nil {
			return OutcomeNoOp, err
		}

		if HandValue(game.PlayerHand) > blackjackValue {
			game.Status = models.GameStatusPlayerBust
			return OutcomeSettled, nil
		}

		return OutcomeContinue, nil

	case MoveStand:
		playDealer(game)
		game.Status = resolveOutcome(game)
		return OutcomeSettled, nil

	case MoveDouble:
		// One forced card; the player may not act again regardless of
		// the result.
		if err := drawPlayerCard(game); err != nil {
			return OutcomeNoOp, err
		}

		if HandValue(game.PlayerHand) > blackjackValue {
			game.Status = models.GameStatusPlayerBust
			return OutcomeSettled, nil
		}

		playDealer(game)
		game.Status = resolveOutcome(game)
		return OutcomeSettled, nil

	default:
		return OutcomeNoOp, nil
	}
}

// drawPlayerCard moves the front deck card into the player hand.
func drawPlayerCard(game *models.Game) error {
	card, err := game.Deck.Draw()
	if err != nil {
		return err
	}

	game.PlayerHand = append(game.PlayerHand, card)
	return nil
}

// playDealer draws into the dealer hand until its value reaches 17 or the
// deck is exhausted. An exhausted deck is not an error: the dealer stands
// on whatever total it holds.
func playDealer(game *models.Game) {
	for HandValue(game.DealerHand) < dealerStandValue && game.Deck.Size() > 0 {
		card, err := game.Deck.Draw()
		if err != nil {
			return
		}
		game.DealerHand = append(game.DealerHand, card)
	}
}

// resolveOutcome compares final totals once dealer play has stopped. The
// player is known not to have busted at this point.
func resolveOutcome(game *models.Game) models.GameStatus {
	dealerValue := HandValue(game.DealerHand)
	playerValue := HandValue(game.PlayerHand)

	switch {
	case dealerValue > blackjackValue:
		return models.GameStatusDealerBust
	case dealerValue > playerValue:
		return models.GameStatusPlayerLose
	case dealerValue < playerValue:
		return models.GameStatusPlayerWin
	default:
		return models.GameStatusTie
	}
}
