package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/titleround/title-api/api"
)

// RateTiers is a slice of RateTier objects
type RateTiers []RateTier

// RateTier is one row of a published rate schedule. Amounts are cents;
// PerThousand is cents per $1,000 of liability. MaxLiability is NULL on the
// open-ended top bracket. Rows are effective-dated so a schedule revision is a
// new set of rows, never an update in place.
type RateTier struct {
	ID          uuid.UUID `db:"id"`
	State       string    `db:"state" validate:"required,len=2"`
	Underwriter string    `db:"underwriter" validate:"required"`
	RateType    string    `db:"rate_type" validate:"required,rateType"`
	Variant     string    `db:"variant" validate:"required,tableVariant"`

	MinLiability int       `db:"min_liability" validate:"min=0"`
	MaxLiability nulls.Int `db:"max_liability"`
	Amount       int       `db:"amount" validate:"min=0"`
	PerThousand  int       `db:"per_thousand" validate:"min=0"`
	ELCAmount    int       `db:"elc_amount" validate:"min=0"`

	EffectiveDate time.Time  `db:"effective_date" validate:"required"`
	ExpiresDate   nulls.Time `db:"expires_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *RateTier) Create(tx *pop.Connection) error {
	return create(tx, r)
}

// Validate gets run every time you call a "pop.Validate*" method.
func (r *RateTier) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(r), nil
}

// FindEffective loads the schedule rows for a rate book scope, ordered for the
// engine's tier walk.
func (r *RateTiers) FindEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) error {
	err := scopeEffective(tx, state, underwriter, asOf).
		Order("rate_type, variant, min_liability").
		All(r)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
