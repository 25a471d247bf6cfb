package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvote/ballot/internal/core/domain"
)

type BallotRepository interface {
	Save(ctx context.Context, ballot *domain.Ballot) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ballot, error)
	GetAll(ctx context.Context) ([]*domain.Ballot, error)
}

type CreateBallotInput struct {
	Title   string
	Options []string
}

type BallotService interface {
	Create(ctx context.Context, input CreateBallotInput) (*domain.Ballot, error)
	Get(ctx context.Context, id string) (*domain.Ballot, error)
	AddOption(ctx context.Context, ballotID string, text string) (*domain.Ballot, error)
	CastVote(ctx context.Context, ballotID string, optionID int64) (*domain.Ballot, error)
	Reset(ctx context.Context, ballotID string) (*domain.Ballot, error)
	Results(ctx context.Context, ballotID string) ([]domain.OptionStats, error)
}
