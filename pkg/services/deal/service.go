package deal

import (
	"context"

	"github.com/coder/quartz"
	"github.com/fadedpez/carddeal/internal/config"
	"github.com/fadedpez/carddeal/internal/logging"
	"github.com/fadedpez/carddeal/internal/randutil"
	"github.com/fadedpez/carddeal/internal/types"
	"github.com/fadedpez/carddeal/pkg/cards"
	"github.com/fadedpez/carddeal/pkg/entities"
	"github.com/fadedpez/carddeal/pkg/games/common"
	"github.com/fadedpez/carddeal/pkg/repositories/round"
	"github.com/google/uuid"
)

// NoPlayersMessage is reported when a deal is requested with nobody seated
const NoPlayersMessage = "There are no players to distribute !!"

// Distribute deals every card of the deck round-robin: card i goes to
// players[i % len(players)]. With no players it returns NO_PLAYERS and
// touches nothing.
func Distribute(deck *cards.Deck, players []*common.Player) error {
	if len(players) == 0 {
		return types.NewDealError(types.ErrNoPlayers, NoPlayersMessage)
	}

	for i, card := range deck.Cards {
		players[i%len(players)].AddCard(card)
	}
	return nil
}

// Options configures a Service
type Options struct {
	ShuffleMode config.ShuffleMode
	// Seed is used when HasSeed is set, otherwise the clock supplies one
	Seed    int64
	HasSeed bool
}

// Service runs complete rounds: build, shuffle, register, deal
type Service struct {
	repository round.Repository
	clock      quartz.Clock
	logger     *logging.Logger
	options    Options
}

// NewService creates a new deal service
func NewService(repository round.Repository, clock quartz.Clock, logger *logging.Logger, options Options) *Service {
	if options.ShuffleMode == "" {
		options.ShuffleMode = config.ShuffleClassic
	}
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		repository: repository,
		clock:      clock,
		logger:     logger,
		options:    options,
	}
}

// Run plays one round for playerCount players and records it. A round with
// no players is still recorded and returned with Dealt false; it is not an
// error.
func (s *Service) Run(ctx context.Context, playerCount int) (*entities.Round, error) {
	seed := s.options.Seed
	if !s.options.HasSeed {
		seed = randutil.SeedFromClock(s.clock)
	}

	r := &entities.Round{
		ID:          uuid.New().String(),
		DealtAt:     s.clock.Now(),
		Seed:        seed,
		ShuffleMode: string(s.options.ShuffleMode),
	}
	s.logger.Debug("Starting round %s with seed %d", r.ID, seed)

	r.Deck = cards.NewDeck()
	s.shuffle(r.Deck, randutil.New(seed))

	r.Players = common.NewPlayers(playerCount)

	if err := Distribute(r.Deck, r.Players); err != nil {
		if !types.IsDealError(err, types.ErrNoPlayers) {
			return nil, err
		}
		s.logger.LogError(err)
	} else {
		r.Dealt = true
		s.logger.Debug("Dealt %d cards to %d players", r.CardsDealt(), len(r.Players))
	}

	if err := s.repository.SaveRound(ctx, r); err != nil {
		return nil, types.WrapError(types.ErrInternalError, "failed to record round", err)
	}
	return r, nil
}

func (s *Service) shuffle(deck *cards.Deck, rng cards.Intner) {
	switch s.options.ShuffleMode {
	case config.ShuffleUniform:
		deck.ShuffleUniform(rng)
	default:
		deck.Shuffle(rng)
	}
}
