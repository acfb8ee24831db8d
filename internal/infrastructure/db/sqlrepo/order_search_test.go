package sqlrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shopservice/internal/domain/order"
)

func TestSearchClause(t *testing.T) {
	where, args := searchClause(order.Search{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = searchClause(order.Search{Status: order.StatusCancel})
	assert.Contains(t, where, "o.status = $1")
	assert.Equal(t, []any{"CANCEL"}, args)

	where, args = searchClause(order.Search{MemberName: "user", Status: order.StatusOrder})
	assert.Contains(t, where, "lower(m.username) LIKE")
	assert.Contains(t, where, "lower(CAST($1 AS TEXT))")
	assert.Contains(t, where, "o.status = $2")
	assert.Equal(t, []any{"user", "ORDER"}, args)
}
