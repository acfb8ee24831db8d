package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"shopservice/internal/domain/team"
)

type TeamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Save(ctx context.Context, name string) (team.Team, error) {
	t := team.Team{Name: name}
	err := queryRow(ctx, r.db,
		`INSERT INTO teams (name) VALUES ($1) RETURNING id`,
		name,
	).Scan(&t.ID)
	if err != nil {
		return team.Team{}, err
	}
	return t, nil
}

func (r *TeamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := queryRow(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE name = $1)`,
		name,
	).Scan(&exists)
	return exists, err
}

func (r *TeamRepository) FindByID(ctx context.Context, id int64) (team.Team, bool, error) {
	var t team.Team
	err := queryRow(ctx, r.db,
		`SELECT id, name FROM teams WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Name)

	if errors.Is(err, sql.ErrNoRows) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, err
	}
	return t, true, nil
}

func (r *TeamRepository) FindAll(ctx context.Context) ([]team.Team, error) {
	rows, err := query(ctx, r.db, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (team.Team, error) {
		var t team.Team
		err := s.Scan(&t.ID, &t.Name)
		return t, err
	})
}
