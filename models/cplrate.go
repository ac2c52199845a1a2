package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/titleround/title-api/api"
)

// CPLRates is a slice of CPLRate objects
type CPLRates []CPLRate

// CPLRate is one bracket of a tiered closing protection letter schedule,
// charged in cents per $1,000 of the liability covered by the bracket.
type CPLRate struct {
	ID          uuid.UUID `db:"id"`
	State       string    `db:"state" validate:"required,len=2"`
	Underwriter string    `db:"underwriter" validate:"required"`

	MinLiability    int       `db:"min_liability" validate:"min=0"`
	MaxLiability    nulls.Int `db:"max_liability"`
	RatePerThousand int       `db:"rate_per_thousand" validate:"min=0"`

	EffectiveDate time.Time  `db:"effective_date" validate:"required"`
	ExpiresDate   nulls.Time `db:"expires_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *CPLRate) Create(tx *pop.Connection) error {
	return create(tx, c)
}

// Validate gets run every time you call a "pop.Validate*" method.
func (c *CPLRate) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(c), nil
}

func (c *CPLRates) FindEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) error {
	err := scopeEffective(tx, state, underwriter, asOf).
		Order("min_liability").
		All(c)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
