package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickvote/ballot/internal/core/domain"
	"github.com/quickvote/ballot/internal/core/ports"
)

type ballotService struct {
	repo ports.BallotRepository
}

func NewBallotService(repo ports.BallotRepository) ports.BallotService {
	return &ballotService{
		repo: repo,
	}
}

// Create seeds a new ballot. With no options given it starts from the fixed
// two-option seed state; otherwise the trimmed option texts are used and at
// least two must survive trimming.
func (s *ballotService) Create(ctx context.Context, input ports.CreateBallotInput) (*domain.Ballot, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}

	var state domain.VotingState
	if len(input.Options) == 0 {
		state = domain.SeedState()
	} else {
		var texts []string
		for _, text := range input.Options {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			texts = append(texts, text)
		}
		if len(texts) < 2 {
			return nil, errors.New("at least two valid options are required")
		}
		state = domain.NewState(texts)
	}

	ballot := &domain.Ballot{
		ID:        uuid.New(),
		Title:     input.Title,
		CreatedAt: time.Now(),
		State:     state,
	}

	if err := s.repo.Save(ctx, ballot); err != nil {
		return nil, err
	}

	return ballot, nil
}

func (s *ballotService) Get(ctx context.Context, id string) (*domain.Ballot, error) {
	ballotID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidBallotID
	}

	return s.repo.GetByID(ctx, ballotID)
}

// AddOption performs the validation the engine deliberately omits: the text
// is trimmed and blank text is rejected before the action is dispatched.
func (s *ballotService) AddOption(ctx context.Context, ballotID string, text string) (*domain.Ballot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyOptionText
	}

	return s.dispatch(ctx, ballotID, domain.AddOption{Text: text})
}

// CastVote rejects unknown option IDs up front so the caller gets an error;
// the engine itself would silently no-op on them.
func (s *ballotService) CastVote(ctx context.Context, ballotID string, optionID int64) (*domain.Ballot, error) {
	ballot, err := s.Get(ctx, ballotID)
	if err != nil {
		return nil, err
	}

	if !ballot.State.HasOption(optionID) {
		return nil, domain.ErrOptionNotFound
	}

	next := domain.Transition(ballot.State, domain.CastVote{OptionID: optionID})
	return s.save(ctx, ballot, next)
}

func (s *ballotService) Reset(ctx context.Context, ballotID string) (*domain.Ballot, error) {
	return s.dispatch(ctx, ballotID, domain.Reset{})
}

func (s *ballotService) Results(ctx context.Context, ballotID string) ([]domain.OptionStats, error) {
	ballot, err := s.Get(ctx, ballotID)
	if err != nil {
		return nil, err
	}

	return ballot.State.Stats(), nil
}

func (s *ballotService) dispatch(ctx context.Context, ballotID string, action domain.Action) (*domain.Ballot, error) {
	ballot, err := s.Get(ctx, ballotID)
	if err != nil {
		return nil, err
	}

	next := domain.Transition(ballot.State, action)
	return s.save(ctx, ballot, next)
}

func (s *ballotService) save(ctx context.Context, ballot *domain.Ballot, next domain.VotingState) (*domain.Ballot, error) {
	ballot.State = next
	if err := s.repo.Save(ctx, ballot); err != nil {
		return nil, err
	}
	return ballot, nil
}
