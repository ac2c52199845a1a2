// Package rater implements the premium calculation engine. Every calculation is
// a pure function of a request and an immutable RateBook snapshot; the package
// has no database access, no clock, and no mutable package state, so identical
// inputs always produce identical cent-exact results.
package rater

import (
	"errors"
	"fmt"
	"time"

	"github.com/titleround/title-api/api"
)

// RateType selects between the customer-facing premium schedule and the
// insurer's basic rate schedule (used by some endorsement pricing).
type RateType string

const (
	RateTypePremium = RateType("premium")
	RateTypeBasic   = RateType("basic")
)

// Variant names a rate table within one (state, underwriter, rate type) scope.
// Most scopes only carry VariantOriginal; Florida adds a reissue table and
// Arizona adds region-scoped tables.
type Variant string

const (
	VariantOriginal = Variant("original")
	VariantReissue  = Variant("reissue")
	VariantRegion2  = Variant("region2")
)

// OwnerParams are the inputs to an owner's policy premium calculation.
type OwnerParams struct {
	Liability  int
	PolicyType api.PolicyType
	AsOf       time.Time

	PriorPolicyDate   time.Time // zero = no prior policy
	PriorPolicyAmount int

	County     string
	IsHoldOpen bool
}

// LenderParams are the inputs to a lender's policy premium calculation.
type LenderParams struct {
	LoanAmount     int
	OwnerLiability int
	Concurrent     bool
	PolicyType     api.PolicyType
	AsOf           time.Time

	// IsHoldOpen marks a binder/hold-open owner transaction; no lender policy
	// is issued against the binder.
	IsHoldOpen bool
	Exclude    bool
}

func (p OwnerParams) hasPriorPolicy() bool {
	return !p.PriorPolicyDate.IsZero() && p.PriorPolicyAmount > 0
}

// StateCalculator is the jurisdiction policy contract. One implementation
// exists per supported state; all are stateless and operate on the RateBook
// passed in.
type StateCalculator interface {
	OwnersPremium(book *RateBook, p OwnerParams) (int, error)
	LendersPremium(book *RateBook, p LenderParams) (int, error)
	OwnersLineItem(p OwnerParams) string
	ReissueDiscount(book *RateBook, p OwnerParams) (int, error)
}

func configError(key api.ErrorKey, format string, a ...interface{}) error {
	return api.NewAppError(fmt.Errorf(format, a...), key, api.CategoryUser)
}

func validateAmount(name string, amount int) error {
	if amount < 0 {
		return api.NewAppError(
			errors.New(name+" must not be negative"),
			api.ErrorNegativeAmount,
			api.CategoryUser,
		)
	}
	return nil
}

// multiplier resolves the policy-type multiplier, preferring the versioned
// policy-type rows in the rate book over the jurisdiction rule defaults.
func multiplier(book *RateBook, rules Rules, pt api.PolicyType) float64 {
	if m, ok := book.Multipliers[pt]; ok {
		return m
	}
	if m, ok := rules.Multipliers[pt]; ok {
		return m
	}
	switch pt {
	case api.PolicyTypeHomeowner:
		return 1.10
	case api.PolicyTypeExtended:
		return 1.25
	}
	return 1.0
}
