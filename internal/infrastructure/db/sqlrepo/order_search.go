package sqlrepo

import (
	"fmt"
	"strings"

	"shopservice/internal/domain/order"
)

// searchClause builds the WHERE clause for an order search over the aliases
// o (orders) and m (members). Parameters are numbered from 1. The member name
// matches as a case-insensitive substring on every backend.
func searchClause(search order.Search) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if search.MemberName != "" {
		args = append(args, search.MemberName)
		conds = append(conds, fmt.Sprintf(`lower(m.username) LIKE '%%' || lower(CAST($%d AS TEXT)) || '%%'`, len(args)))
	}
	if search.Status != "" {
		args = append(args, string(search.Status))
		conds = append(conds, fmt.Sprintf(`o.status = $%d`, len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "\n WHERE " + strings.Join(conds, "\n   AND "), args
}
