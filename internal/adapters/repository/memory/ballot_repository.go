package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/quickvote/ballot/internal/core/domain"
	"github.com/quickvote/ballot/internal/core/ports"
)

// ballotRepository keeps ballots in a mutex-guarded map. Snapshots are
// copied on the way in and out so callers can never mutate stored state
// except through Save.
type ballotRepository struct {
	mu      sync.RWMutex
	ballots map[uuid.UUID]*domain.Ballot
}

func NewBallotRepository() ports.BallotRepository {
	return &ballotRepository{
		ballots: make(map[uuid.UUID]*domain.Ballot),
	}
}

func (r *ballotRepository) Save(ctx context.Context, ballot *domain.Ballot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ballots[ballot.ID] = cloneBallot(ballot)
	return nil
}

func (r *ballotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ballot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ballot, ok := r.ballots[id]
	if !ok {
		return nil, domain.ErrBallotNotFound
	}
	return cloneBallot(ballot), nil
}

func (r *ballotRepository) GetAll(ctx context.Context) ([]*domain.Ballot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ballots := make([]*domain.Ballot, 0, len(r.ballots))
	for _, ballot := range r.ballots {
		ballots = append(ballots, cloneBallot(ballot))
	}
	sort.Slice(ballots, func(i, j int) bool {
		return ballots[i].CreatedAt.Before(ballots[j].CreatedAt)
	})
	return ballots, nil
}

func cloneBallot(ballot *domain.Ballot) *domain.Ballot {
	out := *ballot
	out.State.Options = make([]domain.Option, len(ballot.State.Options))
	copy(out.State.Options, ballot.State.Options)
	return &out
}
