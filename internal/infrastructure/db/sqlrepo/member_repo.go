package sqlrepo

import (
	"context"
	"database/sql"
	"errors"

	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
)

const memberColumns = `m.id, m.username, m.age, m.team_id, m.city, m.street, m.zipcode`

type MemberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func scanMember(s scanner) (member.Member, error) {
	var (
		m                     member.Member
		teamID                sql.NullInt64
		city, street, zipcode string
	)
	if err := s.Scan(&m.ID, &m.Username, &m.Age, &teamID, &city, &street, &zipcode); err != nil {
		return member.Member{}, err
	}
	if teamID.Valid {
		id := teamID.Int64
		m.TeamID = &id
	}
	m.Address = domain.NewAddress(city, street, zipcode)
	return m, nil
}

func (r *MemberRepository) list(ctx context.Context, q string, args ...any) ([]member.Member, error) {
	rows, err := query(ctx, r.db, q, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanMember)
}

func (r *MemberRepository) Save(ctx context.Context, m member.Member) (member.Member, error) {
	var teamID sql.NullInt64
	if m.TeamID != nil {
		teamID = sql.NullInt64{Int64: *m.TeamID, Valid: true}
	}

	err := queryRow(ctx, r.db,
		`INSERT INTO members (username, age, team_id, city, street, zipcode)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.Username, m.Age, teamID, m.Address.City(), m.Address.Street(), m.Address.Zipcode(),
	).Scan(&m.ID)
	if err != nil {
		return member.Member{}, err
	}
	return m, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id int64) (member.Member, bool, error) {
	m, err := scanMember(queryRow(ctx, r.db,
		`SELECT `+memberColumns+`
		   FROM members m
		  WHERE m.id = $1`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return member.Member{}, false, nil
	}
	if err != nil {
		return member.Member{}, false, err
	}
	return m, true, nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]member.Member, error) {
	return r.list(ctx, `SELECT `+memberColumns+` FROM members m ORDER BY m.id`)
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := queryRow(ctx, r.db, `SELECT COUNT(*) FROM members`).Scan(&n)
	return n, err
}

func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	_, err := exec(ctx, r.db, `DELETE FROM members WHERE id = $1`, id)
	return err
}

func (r *MemberRepository) FindByUsernameAndAgeGreaterThan(ctx context.Context, username string, age int) ([]member.Member, error) {
	return r.list(ctx,
		`SELECT `+memberColumns+`
		   FROM members m
		  WHERE m.username = $1
		    AND m.age > $2
		  ORDER BY m.id`,
		username, age,
	)
}

func (r *MemberRepository) FindByUsernameAndAge(ctx context.Context, username string, age int) ([]member.Member, error) {
	return r.list(ctx,
		`SELECT `+memberColumns+`
		   FROM members m
		  WHERE m.username = $1
		    AND m.age = $2
		  ORDER BY m.id`,
		username, age,
	)
}

func (r *MemberRepository) FindByUsername(ctx context.Context, username string) ([]member.Member, error) {
	return r.list(ctx,
		`SELECT `+memberColumns+`
		   FROM members m
		  WHERE m.username = $1
		  ORDER BY m.id`,
		username,
	)
}

func (r *MemberRepository) FindUsernames(ctx context.Context) ([]string, error) {
	rows, err := query(ctx, r.db, `SELECT username FROM members ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (string, error) {
		var name string
		err := s.Scan(&name)
		return name, err
	})
}

func (r *MemberRepository) FindTeamViews(ctx context.Context) ([]member.TeamView, error) {
	rows, err := query(ctx, r.db,
		`SELECT m.id, m.username, t.name
		   FROM members m
		   JOIN teams t ON t.id = m.team_id
		  ORDER BY m.id`,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows, func(s scanner) (member.TeamView, error) {
		var v member.TeamView
		err := s.Scan(&v.ID, &v.Username, &v.TeamName)
		return v, err
	})
}
