package dto

import (
	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
	"shopservice/internal/domain/team"
)

type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

func NewAddress(a domain.Address) Address {
	return Address{City: a.City(), Street: a.Street(), Zipcode: a.Zipcode()}
}

func (a Address) ToDomain() domain.Address {
	return domain.NewAddress(a.City, a.Street, a.Zipcode)
}

type Member struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"teamId,omitempty"`
	Address  Address `json:"address"`
}

func NewMember(m member.Member) Member {
	return Member{
		ID:       m.ID,
		Username: m.Username,
		Age:      m.Age,
		TeamID:   m.TeamID,
		Address:  NewAddress(m.Address),
	}
}

func NewMembers(ms []member.Member) []Member {
	res := make([]Member, 0, len(ms))
	for _, m := range ms {
		res = append(res, NewMember(m))
	}
	return res
}

type CreateMemberRequest struct {
	Username string  `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"teamId"`
	Address  Address `json:"address"`
}

// MemberTeam is the member projection joined with its team name.
type MemberTeam struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	TeamName string `json:"teamName"`
}

func NewMemberTeams(vs []member.TeamView) []MemberTeam {
	res := make([]MemberTeam, 0, len(vs))
	for _, v := range vs {
		res = append(res, MemberTeam{ID: v.ID, Username: v.Username, TeamName: v.TeamName})
	}
	return res
}

type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewTeams(ts []team.Team) []Team {
	res := make([]Team, 0, len(ts))
	for _, t := range ts {
		res = append(res, Team{ID: t.ID, Name: t.Name})
	}
	return res
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}
