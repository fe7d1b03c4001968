package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/justplay-app/league-manager/models"
	"github.com/lib/pq"
)

var (
	ErrLeagueNotFound     = errors.New("league not found")
	ErrLeagueCodeConflict = errors.New("league join code already in use")
)

type LeagueRepository interface {
	Create(ctx context.Context, league *models.League) error
	GetByID(ctx context.Context, id string) (*models.League, error)
	GetByCode(ctx context.Context, code string) (*models.League, error)
	List(ctx context.Context) ([]*models.League, error)
	Update(ctx context.Context, league *models.League) error
	UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error
}

type postgresLeagueRepository struct {
	db *sql.DB
}

func NewPostgresLeagueRepository(db *sql.DB) LeagueRepository {
	return &postgresLeagueRepository{db: db}
}

const leagueColumns = `id, code, name, description, sport, location, start_date, allow_free_join, number_of_teams, organizer_id, avatar_key, created_at`

func (r *postgresLeagueRepository) Create(ctx context.Context, league *models.League) error {
	query := `
		INSERT INTO leagues
			(id, code, name, description, sport, location, start_date, allow_free_join, number_of_teams, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		league.ID,
		league.Code,
		league.Name,
		league.Description,
		league.Sport,
		league.Location,
		league.StartDate,
		league.AllowFreeJoin,
		league.NumberOfTeams,
		league.OrganizerID,
	).Scan(&league.CreatedAt)

	return r.handleLeagueError(err)
}

func (r *postgresLeagueRepository) GetByID(ctx context.Context, id string) (*models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE id = $1`
	return r.scanLeague(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresLeagueRepository) GetByCode(ctx context.Context, code string) (*models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues WHERE code = $1`
	return r.scanLeague(r.db.QueryRowContext(ctx, query, code))
}

func (r *postgresLeagueRepository) List(ctx context.Context) ([]*models.League, error) {
	query := `SELECT ` + leagueColumns + ` FROM leagues ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leagues := make([]*models.League, 0)
	for rows.Next() {
		league, scanErr := r.scanLeague(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}

func (r *postgresLeagueRepository) Update(ctx context.Context, league *models.League) error {
	query := `
		UPDATE leagues
		SET name = $1, description = $2, location = $3, start_date = $4, allow_free_join = $5, number_of_teams = $6
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		league.Name,
		league.Description,
		league.Location,
		league.StartDate,
		league.AllowFreeJoin,
		league.NumberOfTeams,
		league.ID,
	)
	if err != nil {
		return r.handleLeagueError(err)
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

func (r *postgresLeagueRepository) UpdateAvatarKey(ctx context.Context, id string, avatarKey *string) error {
	query := `UPDATE leagues SET avatar_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLeagueNotFound)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresLeagueRepository) scanLeague(row rowScanner) (*models.League, error) {
	league := &models.League{}
	err := row.Scan(
		&league.ID,
		&league.Code,
		&league.Name,
		&league.Description,
		&league.Sport,
		&league.Location,
		&league.StartDate,
		&league.AllowFreeJoin,
		&league.NumberOfTeams,
		&league.OrganizerID,
		&league.AvatarKey,
		&league.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, err
	}
	return league, nil
}

func (r *postgresLeagueRepository) handleLeagueError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" && pqErr.Constraint == "leagues_code_key" { // unique_violation
			return ErrLeagueCodeConflict
		}
	}
	return err
}
