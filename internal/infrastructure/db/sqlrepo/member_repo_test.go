package sqlrepo_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
	"shopservice/internal/domain/roundtrip"
	"shopservice/internal/infrastructure/db/sqlrepo"
)

func saveMembers(t *testing.T, repo *sqlrepo.MemberRepository, members ...member.Member) []member.Member {
	t.Helper()
	saved := make([]member.Member, 0, len(members))
	for _, m := range members {
		s, err := repo.Save(context.Background(), m)
		require.NoError(t, err)
		saved = append(saved, s)
	}
	return saved
}

func TestMemberRepository_SaveAndFindByID(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		ctx := context.Background()
		repo := sqlrepo.NewMemberRepository(db)

		saved := saveMembers(t, repo, member.Member{
			Username: "user1",
			Age:      10,
			Address:  domain.NewAddress("Seoul", "Teheran-ro", "06234"),
		})[0]
		assert.Equal(t, int64(1), saved.ID)

		found, ok, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, saved, found)

		_, ok, err = repo.FindByID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemberRepository_CRUD(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		ctx := context.Background()
		repo := sqlrepo.NewMemberRepository(db)

		saved := saveMembers(t, repo, member.Member{Username: "member1"}, member.Member{Username: "member2"})

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, all)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		for _, m := range saved {
			require.NoError(t, repo.Delete(ctx, m.ID))
		}
		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)

		all, err = repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestMemberRepository_FindByUsernameAndAgeGreaterThan(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		repo := sqlrepo.NewMemberRepository(db)
		saved := saveMembers(t, repo,
			member.Member{Username: "X", Age: 52},
			member.Member{Username: "X", Age: 38},
		)

		got, err := repo.FindByUsernameAndAgeGreaterThan(context.Background(), "X", 40)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 52, got[0].Age)
		assert.Equal(t, saved[0], got[0])
	})
}

func TestMemberRepository_FindByUsernameAndAge(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		repo := sqlrepo.NewMemberRepository(db)
		saved := saveMembers(t, repo,
			member.Member{Username: "X", Age: 40},
			member.Member{Username: "X", Age: 38},
		)

		got, err := repo.FindByUsernameAndAge(context.Background(), "X", 40)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, saved[0], got[0])
	})
}

func TestMemberRepository_FindByUsername(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		repo := sqlrepo.NewMemberRepository(db)
		saved := saveMembers(t, repo,
			member.Member{Username: "X", Age: 40},
			member.Member{Username: "X", Age: 38},
			member.Member{Username: "Y", Age: 38},
		)

		got, err := repo.FindByUsername(context.Background(), "X")
		require.NoError(t, err)
		assert.Equal(t, saved[:2], got)

		none, err := repo.FindByUsername(context.Background(), "Z")
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestMemberRepository_FindUsernames(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		repo := sqlrepo.NewMemberRepository(db)
		saveMembers(t, repo,
			member.Member{Username: "Faker", Age: 40},
			member.Member{Username: "Canyon", Age: 38},
			member.Member{Username: "Keria", Age: 32},
		)

		ctx, rt := roundtrip.Track(context.Background())
		got, err := repo.FindUsernames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Faker", "Canyon", "Keria"}, got)
		assert.Equal(t, 1, rt.Count())
	})
}

func TestMemberRepository_FindTeamViews(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		ctx := context.Background()
		teams := sqlrepo.NewTeamRepository(db)
		repo := sqlrepo.NewMemberRepository(db)

		t1, err := teams.Save(ctx, "T1")
		require.NoError(t, err)
		dk, err := teams.Save(ctx, "DK")
		require.NoError(t, err)

		saved := saveMembers(t, repo,
			member.Member{Username: "Faker", Age: 40, TeamID: &t1.ID},
			member.Member{Username: "Canyon", Age: 38, TeamID: &dk.ID},
			member.Member{Username: "Solo", Age: 30},
			member.Member{Username: "Keria", Age: 32, TeamID: &t1.ID},
		)

		got, err := repo.FindTeamViews(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)

		names := make([]string, 0, len(got))
		for _, v := range got {
			names = append(names, v.TeamName)
		}
		assert.Equal(t, []string{"T1", "DK", "T1"}, names)
		assert.Equal(t, member.TeamView{ID: saved[3].ID, Username: "Keria", TeamName: "T1"}, got[2])
	})
}

func TestMemberRepository_JoinsAmbientTransaction(t *testing.T) {
	eachBackend(t, func(t *testing.T, db *sql.DB) {
		ctx := context.Background()
		uow := sqlrepo.NewTxManager(db)
		repo := sqlrepo.NewMemberRepository(db)

		err := uow.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := repo.Save(ctx, member.Member{Username: "rolled-back"}); err != nil {
				return err
			}
			return assert.AnError
		})
		require.ErrorIs(t, err, assert.AnError)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
