package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/titleround/title-api/api"
)

// RefinanceRates is a slice of RefinanceRate objects
type RefinanceRates []RefinanceRate

// RefinanceRate is one flat-amount bracket of a refinance rate schedule.
// MaxLoan is NULL on the open-ended top bracket.
type RefinanceRate struct {
	ID          uuid.UUID `db:"id"`
	State       string    `db:"state" validate:"required,len=2"`
	Underwriter string    `db:"underwriter" validate:"required"`

	MinLoan int       `db:"min_loan" validate:"min=0"`
	MaxLoan nulls.Int `db:"max_loan"`
	Amount  int       `db:"amount" validate:"min=0"`

	EffectiveDate time.Time  `db:"effective_date" validate:"required"`
	ExpiresDate   nulls.Time `db:"expires_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *RefinanceRate) Create(tx *pop.Connection) error {
	return create(tx, r)
}

// Validate gets run every time you call a "pop.Validate*" method.
func (r *RefinanceRate) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(r), nil
}

func (r *RefinanceRates) FindEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) error {
	err := scopeEffective(tx, state, underwriter, asOf).
		Order("min_loan").
		All(r)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
