package models

import (
	"time"

	"github.com/gobuffalo/pop/v6"
)

// scopeEffective restricts a reference-data query to one (state, underwriter)
// scope at an as-of date. A NULL expires_date means the row is still in force.
func scopeEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) *pop.Query {
	return tx.Where("state = ?", state).
		Where("underwriter = ?", underwriter).
		Where("effective_date <= ?", asOf).
		Where("(expires_date IS NULL OR expires_date > ?)", asOf)
}
