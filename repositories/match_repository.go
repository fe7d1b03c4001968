package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/justplay-app/league-manager/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchTeamInvalid = errors.New("match references an unknown team")
)

type MatchRepository interface {
	// ReplaceForLeague atomically swaps the league's whole fixture list for
	// the given one. Regeneration is destructive: any previously stored
	// matches and their results are discarded.
	ReplaceForLeague(ctx context.Context, leagueID string, matches []*models.Match) error
	// ListByLeague returns matches in generation order (round, then time).
	ListByLeague(ctx context.Context, leagueID string) ([]*models.Match, error)
	GetByID(ctx context.Context, id string) (*models.Match, error)
	UpdateScore(ctx context.Context, id string, homeScore, awayScore int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) ReplaceForLeague(ctx context.Context, leagueID string, matches []*models.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM matches WHERE league_id = $1`, leagueID); err != nil {
		return fmt.Errorf("failed to clear previous schedule: %w", err)
	}

	insert := `
		INSERT INTO matches
			(id, league_id, round, home_team_id, away_team_id, court, scheduled_at, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	for _, match := range matches {
		err = tx.QueryRowContext(ctx, insert,
			match.ID,
			match.LeagueID,
			match.Round,
			match.HomeTeamID,
			match.AwayTeamID,
			match.Court,
			match.ScheduledAt,
			match.HomeScore,
			match.AwayScore,
		).Scan(&match.CreatedAt)
		if err != nil {
			return r.handleMatchError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule replace: %w", err)
	}
	return nil
}

func (r *postgresMatchRepository) ListByLeague(ctx context.Context, leagueID string) ([]*models.Match, error) {
	query := `
		SELECT id, league_id, round, home_team_id, away_team_id, court, scheduled_at, home_score, away_score, created_at
		FROM matches
		WHERE league_id = $1
		ORDER BY round ASC, scheduled_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.ID,
			&match.LeagueID,
			&match.Round,
			&match.HomeTeamID,
			&match.AwayTeamID,
			&match.Court,
			&match.ScheduledAt,
			&match.HomeScore,
			&match.AwayScore,
			&match.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, &match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	query := `
		SELECT id, league_id, round, home_team_id, away_team_id, court, scheduled_at, home_score, away_score, created_at
		FROM matches
		WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID,
		&match.LeagueID,
		&match.Round,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.Court,
		&match.ScheduledAt,
		&match.HomeScore,
		&match.AwayScore,
		&match.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return match, nil
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id string, homeScore, awayScore int) error {
	query := `UPDATE matches SET home_score = $1, away_score = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, homeScore, awayScore, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" { // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
				return ErrMatchTeamInvalid
			case "matches_league_id_fkey":
				return ErrLeagueNotFound
			}
		}
	}
	return err
}
