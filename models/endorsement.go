package models

import (
	"time"

	"github.com/gobuffalo/nulls"
	"github.com/gobuffalo/pop/v6"
	"github.com/gobuffalo/validate/v3"
	"github.com/gofrs/uuid"

	"github.com/titleround/title-api/api"
)

// Endorsements is a slice of Endorsement objects
type Endorsements []Endorsement

// Endorsement is one entry in an underwriter's endorsement catalog. Which of
// the amount fields matter depends on PricingType: flat uses Amount,
// percentage types use Percentage with the Min/Max clamps, property_tiered
// uses the residential/commercial pair.
type Endorsement struct {
	ID          uuid.UUID `db:"id"`
	State       string    `db:"state" validate:"required,len=2"`
	Underwriter string    `db:"underwriter" validate:"required"`

	Code        string                     `db:"code" validate:"required"`
	Name        string                     `db:"name" validate:"required"`
	PricingType api.EndorsementPricingType `db:"pricing_type" validate:"required,pricingType"`

	Amount            int       `db:"amount" validate:"min=0"`
	Percentage        float64   `db:"percentage" validate:"min=0"`
	MinAmount         nulls.Int `db:"min_amount"`
	MaxAmount         nulls.Int `db:"max_amount"`
	ResidentialAmount int       `db:"residential_amount" validate:"min=0"`
	CommercialAmount  int       `db:"commercial_amount" validate:"min=0"`

	OwnerOnly  bool `db:"owner_only"`
	LenderOnly bool `db:"lender_only"`

	EffectiveDate time.Time  `db:"effective_date" validate:"required"`
	ExpiresDate   nulls.Time `db:"expires_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (e *Endorsement) Create(tx *pop.Connection) error {
	return create(tx, e)
}

// Validate gets run every time you call a "pop.Validate*" method.
func (e *Endorsement) Validate(tx *pop.Connection) (*validate.Errors, error) {
	return validateModel(e), nil
}

func (e *Endorsements) FindEffective(tx *pop.Connection, state, underwriter string, asOf time.Time) error {
	err := scopeEffective(tx, state, underwriter, asOf).
		Order("code").
		All(e)
	return appErrorFromDB(err, api.ErrorQueryFailure)
}

// ConvertToAPI renders the catalog entry for the endorsement listing endpoint.
func (e *Endorsement) ConvertToAPI() api.Endorsement {
	return api.Endorsement{
		Code:        e.Code,
		Name:        e.Name,
		PricingType: e.PricingType,
		OwnerOnly:   e.OwnerOnly,
		LenderOnly:  e.LenderOnly,
	}
}

// ConvertToAPI renders the endorsement catalog
func (e *Endorsements) ConvertToAPI() []api.Endorsement {
	out := make([]api.Endorsement, len(*e))
	for i := range *e {
		out[i] = (*e)[i].ConvertToAPI()
	}
	return out
}
