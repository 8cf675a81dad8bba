package round

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadedpez/carddeal/internal/types"
	"github.com/fadedpez/carddeal/pkg/cards"
	"github.com/fadedpez/carddeal/pkg/entities"
)

// MemoryRepository implements Repository with in-process storage. Nothing
// outlives the process.
type MemoryRepository struct {
	mu     sync.RWMutex
	rounds map[string]*entities.Round
	order  []string
	closed bool
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make(map[string]*entities.Round),
	}
}

// SaveRound stores a round, replacing any earlier round with the same ID
func (r *MemoryRepository) SaveRound(ctx context.Context, round *entities.Round) error {
	if round == nil || round.ID == "" {
		return types.NewDealError(types.ErrInternalError, "round must have an ID")
	}
	if round.Deck != nil {
		for _, card := range round.Deck.Cards {
			if err := cards.Validate(card); err != nil {
				return err
			}
		}
		for _, player := range round.Players {
			for _, card := range player.Hand {
				if !round.Deck.Contains(card) {
					return types.NewDealError(types.ErrInvalidCard,
						fmt.Sprintf("%s holds %v, which is not in the deck", player.Name, card))
				}
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.NewDealError(types.ErrInternalError, "repository is closed")
	}
	if _, exists := r.rounds[round.ID]; !exists {
		r.order = append(r.order, round.ID)
	}
	r.rounds[round.ID] = round
	return nil
}

// GetRound retrieves a round by ID
func (r *MemoryRepository) GetRound(ctx context.Context, id string) (*entities.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	round, exists := r.rounds[id]
	if !exists {
		return nil, types.NewDealError(types.ErrRoundNotFound, fmt.Sprintf("round %s not found", id))
	}
	return round, nil
}

// ListRounds returns every stored round in save order
func (r *MemoryRepository) ListRounds(ctx context.Context) ([]*entities.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := make([]*entities.Round, 0, len(r.order))
	for _, id := range r.order {
		rounds = append(rounds, r.rounds[id])
	}
	return rounds, nil
}

// Close marks the repository closed; later saves fail
func (r *MemoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	return nil
}
