package deck

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/alaw810/blackjack-engine/internal/deck Shuffler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/alaw810/blackjack-engine/internal/models"
)

// Shuffler produces a freshly shuffled 52-card deck for a new game
type Shuffler interface {
	NewShuffledDeck() models.Deck
}

// Config for the random shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomShuffler implements Shuffler with a Fisher-Yates shuffle over a
// process-owned random source
type RandomShuffler struct {
	mu     sync.Mutex // rand.Rand is not safe for concurrent use
	random *rand.Rand
}

// New creates a new random shuffler
func New(cfg *Config) *RandomShuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomShuffler{
		random: random,
	}
}

// NewShuffledDeck builds the 52 distinct cards and returns them in a
// uniformly random order.
func (s *RandomShuffler) NewShuffledDeck() models.Deck {
	cards := make([]models.Card, 0, len(models.Suits)*len(models.Ranks))
	for _, suit := range models.Suits {
		for _, rank := range models.Ranks {
			cards = append(cards, models.Card{Rank: rank, Suit: suit})
		}
	}

	s.mu.Lock()
	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	s.mu.Unlock()

	return models.Deck{Cards: cards}
}
