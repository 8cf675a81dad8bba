package round

import (
	"context"

	"github.com/fadedpez/carddeal/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_round

// Repository keeps the rounds dealt during this process
type Repository interface {
	SaveRound(ctx context.Context, round *entities.Round) error
	GetRound(ctx context.Context, id string) (*entities.Round, error)
	// ListRounds returns rounds in the order they were saved
	ListRounds(ctx context.Context) ([]*entities.Round, error)

	// Close closes any resources used by the repository
	Close() error
}
