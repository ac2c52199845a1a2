package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/titleround/title-api/api"
)

// PolicyTypeRates is a slice of PolicyTypeRate objects
type PolicyTypeRates []PolicyTypeRate

// PolicyTypeRate is a versioned policy-type multiplier. Rows override the
// jurisdiction rule defaults when present for a scope.
type PolicyTypeRate struct {
	ID          uuid.UUID `db:"id"`
	State       string    `db:"state" validate:"required,len=2"`
	Underwriter string    `db:"underwriter" validate:"required"`

	PolicyType api.PolicyType `db:"policy_type" validate:"required,policyType"`
	Multiplier float64        `db:"multiplier" validate:"required,gt=0"`

	EffectiveDate time.Time  `db:"effective_date" validate:"required"`
	ExpiresDate   nulls.Time `db:"expires_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *PolicyTypeRate) Create(tx *pop.Connection) error {
	return create(tx, p)
}

// Validate gets run every time you call a "pop.Validate*" method.
func (p *PolicyTypeRate) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(p), nil
}

func (p *PolicyTypeRates) FindEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) error {
	err := scopeEffective(tx, state, underwriter, asOf).
		Order("policy_type").
		All(p)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}
