package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/quickvote/ballot/internal/core/domain"
	"github.com/quickvote/ballot/internal/core/ports"
)

type ballotRepository struct {
	db *sql.DB
}

func NewBallotRepository(db *sql.DB) ports.BallotRepository {
	return &ballotRepository{
		db: db,
	}
}

// Save writes the full snapshot: the ballot row is upserted and the option
// rows are replaced so the stored state always matches the in-memory one.
func (r *ballotRepository) Save(ctx context.Context, ballot *domain.Ballot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryBallot := `
		INSERT INTO ballots (id, title, total_votes, next_option_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET total_votes = EXCLUDED.total_votes,
		    next_option_id = EXCLUDED.next_option_id
	`
	_, err = tx.ExecContext(ctx, queryBallot,
		ballot.ID, ballot.Title, ballot.State.TotalVotes, ballot.State.NextOptionID, ballot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert ballot: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM ballot_options WHERE ballot_id = $1`, ballot.ID)
	if err != nil {
		return fmt.Errorf("failed to clear options: %w", err)
	}

	queryOption := `
		INSERT INTO ballot_options (ballot_id, option_id, text, votes, position)
		VALUES ($1, $2, $3, $4, $5)
	`
	stmt, err := tx.PrepareContext(ctx, queryOption)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for i, opt := range ballot.State.Options {
		_, err = stmt.ExecContext(ctx, ballot.ID, opt.ID, opt.Text, opt.Votes, i)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *ballotRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ballot, error) {
	queryBallot := `
		SELECT id, title, total_votes, next_option_id, created_at
		FROM ballots
		WHERE id = $1
	`

	var ballot domain.Ballot
	err := r.db.QueryRowContext(ctx, queryBallot, id).Scan(
		&ballot.ID, &ballot.Title, &ballot.State.TotalVotes, &ballot.State.NextOptionID, &ballot.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBallotNotFound
		}
		return nil, fmt.Errorf("failed to get ballot: %w", err)
	}

	options, err := r.fetchOptions(ctx, ballot.ID)
	if err != nil {
		return nil, err
	}
	ballot.State.Options = options

	return &ballot, nil
}

func (r *ballotRepository) GetAll(ctx context.Context) ([]*domain.Ballot, error) {
	query := `
		SELECT id, title, total_votes, next_option_id, created_at
		FROM ballots
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all ballots: %w", err)
	}
	defer rows.Close()

	var ballots []*domain.Ballot
	for rows.Next() {
		var ballot domain.Ballot
		err := rows.Scan(&ballot.ID, &ballot.Title, &ballot.State.TotalVotes, &ballot.State.NextOptionID, &ballot.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}

		options, err := r.fetchOptions(ctx, ballot.ID)
		if err != nil {
			return nil, err
		}
		ballot.State.Options = options

		ballots = append(ballots, &ballot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ballots: %w", err)
	}
	return ballots, nil
}

func (r *ballotRepository) fetchOptions(ctx context.Context, ballotID uuid.UUID) ([]domain.Option, error) {
	queryOptions := `
		SELECT option_id, text, votes
		FROM ballot_options
		WHERE ballot_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, queryOptions, ballotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot options: %w", err)
	}
	defer rows.Close()

	var options []domain.Option
	for rows.Next() {
		var opt domain.Option
		if err := rows.Scan(&opt.ID, &opt.Text, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}
	return options, nil
}
