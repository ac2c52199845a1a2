package api

import (
	"fmt"
	"strings"
)

type TransactionType string

const (
	TransactionTypePurchase  = TransactionType("purchase")
	TransactionTypeRefinance = TransactionType("refinance")
)

type PolicyType string

const (
	PolicyTypeStandard  = PolicyType("standard")
	PolicyTypeHomeowner = PolicyType("homeowner")
	PolicyTypeExtended  = PolicyType("extended")
)

// Label returns the human-readable form used in disclosure line items.
func (p PolicyType) Label() string {
	switch p {
	case PolicyTypeStandard:
		return "Standard"
	case PolicyTypeHomeowner:
		return "Homeowner's"
	case PolicyTypeExtended:
		return "Extended"
	}
	return capitalize(string(p))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type PropertyType string

const (
	PropertyTypeResidential = PropertyType("residential")
	PropertyTypeCommercial  = PropertyType("commercial")
)

type EndorsementPricingType string

const (
	EndorsementPricingFlat               = EndorsementPricingType("flat")
	EndorsementPricingPercentage         = EndorsementPricingType("percentage")
	EndorsementPricingPercentageBasic    = EndorsementPricingType("percentage_basic")
	EndorsementPricingPercentageCombined = EndorsementPricingType("percentage_combined")
	EndorsementPricingPropertyTiered     = EndorsementPricingType("property_tiered")
	EndorsementPricingNoCharge           = EndorsementPricingType("no_charge")
)

// Endorsement is one catalog entry in the endorsement listing
// swagger:model
type Endorsement struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name"`
	PricingType EndorsementPricingType `json:"pricing_type"`
	OwnerOnly   bool                   `json:"owner_only"`
	LenderOnly  bool                   `json:"lender_only"`
}

// CalculationRequest is the inbound payload for a premium calculation. All money
// fields are integer cents.
// swagger:model
type CalculationRequest struct {
	TransactionType TransactionType `json:"transaction_type"`

	State       string `json:"state"`
	Underwriter string `json:"underwriter"`

	// AsOfDate selects the effective rate rows, e.g. "2025-06-01"
	AsOfDate string `json:"as_of_date"`

	PropertyAddress string `json:"property_address,omitempty"`

	PurchasePrice int `json:"purchase_price"`
	LoanAmount    int `json:"loan_amount"`

	OwnerPolicyType      PolicyType `json:"owner_policy_type"`
	LenderPolicyType     PolicyType `json:"lender_policy_type"`
	IncludeLendersPolicy *bool      `json:"include_lenders_policy,omitempty"`

	EndorsementCodes []string `json:"endorsement_codes,omitempty"`

	IncludeCPL bool `json:"include_cpl"`

	// PriorPolicyDate enables reissue pricing, e.g. "2022-03-15"
	PriorPolicyDate   string `json:"prior_policy_date,omitempty"`
	PriorPolicyAmount int    `json:"prior_policy_amount,omitempty"`

	County       string       `json:"county,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`

	IsHoldOpen bool `json:"is_hold_open"`
}

// PolicyBreakdown describes one priced policy on the disclosure
// swagger:model
type PolicyBreakdown struct {
	Type            string `json:"type"`
	Liability       int    `json:"liability"`
	Premium         int    `json:"premium"`
	LineItem        string `json:"line_item"`
	ReissueDiscount int    `json:"reissue_discount,omitempty"`
}

// EndorsementCharge is one priced endorsement on the disclosure
// swagger:model
type EndorsementCharge struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// CPLBreakdown is the closing protection letter charge
// swagger:model
type CPLBreakdown struct {
	Amount   int    `json:"amount"`
	LineItem string `json:"line_item"`
}

// Totals sums the disclosure sections. GrandTotal is rounded up to the whole dollar.
// swagger:model
type Totals struct {
	TitleInsurance int `json:"title_insurance"`
	Endorsements   int `json:"endorsements"`
	CPL            int `json:"cpl"`
	GrandTotal     int `json:"grand_total"`
}

// TransactionSummary echoes the priced transaction
// swagger:model
type TransactionSummary struct {
	Type            TransactionType `json:"type"`
	State           string          `json:"state"`
	Underwriter     string          `json:"underwriter"`
	PropertyAddress string          `json:"property_address,omitempty"`
	PurchasePrice   int             `json:"purchase_price"`
	LoanAmount      int             `json:"loan_amount"`
}

// ClosingDisclosure is the outbound result of a premium calculation
// swagger:model
type ClosingDisclosure struct {
	Transaction   TransactionSummary  `json:"transaction"`
	OwnersPolicy  *PolicyBreakdown    `json:"owners_policy,omitempty"`
	LendersPolicy *PolicyBreakdown    `json:"lenders_policy,omitempty"`
	Endorsements  []EndorsementCharge `json:"endorsements"`
	CPL           *CPLBreakdown       `json:"cpl,omitempty"`
	Totals        Totals              `json:"totals"`
}

// FormatCurrency renders integer cents as a dollar string with thousands separators.
func FormatCurrency(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100

	s := fmt.Sprintf("%d", dollars)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return fmt.Sprintf("%s$%s.%02d", sign, strings.Join(parts, ","), remainder)
}

// String renders the disclosure as the plain-text closing statement used by the CLI.
func (d ClosingDisclosure) String() string {
	var b strings.Builder
	line := strings.Repeat("=", 50)

	b.WriteString(line + "\n")
	b.WriteString("TITLE INSURANCE PREMIUM CALCULATION\n")
	b.WriteString(line + "\n\n")
	b.WriteString("Transaction: " + capitalize(string(d.Transaction.Type)) + "\n")
	if d.Transaction.PropertyAddress != "" {
		b.WriteString("Property: " + d.Transaction.PropertyAddress + "\n")
	}
	if d.Transaction.PurchasePrice > 0 {
		b.WriteString("Purchase Price: " + FormatCurrency(d.Transaction.PurchasePrice) + "\n")
	}
	if d.Transaction.LoanAmount > 0 {
		b.WriteString("Loan Amount: " + FormatCurrency(d.Transaction.LoanAmount) + "\n")
	}
	b.WriteString("\n" + strings.Repeat("-", 50) + "\n")

	if d.OwnersPolicy != nil {
		b.WriteString("\nOWNER'S POLICY\n")
		b.WriteString("  " + d.OwnersPolicy.LineItem + "\n")
		b.WriteString("  Liability: " + FormatCurrency(d.OwnersPolicy.Liability) + "\n")
		b.WriteString("  Premium: " + FormatCurrency(d.OwnersPolicy.Premium) + "\n")
		if d.OwnersPolicy.ReissueDiscount > 0 {
			b.WriteString("  Reissue Discount: -" + FormatCurrency(d.OwnersPolicy.ReissueDiscount) + "\n")
		}
	}

	if d.LendersPolicy != nil {
		b.WriteString("\nLENDER'S POLICY\n")
		b.WriteString("  " + d.LendersPolicy.LineItem + "\n")
		b.WriteString("  Liability: " + FormatCurrency(d.LendersPolicy.Liability) + "\n")
		b.WriteString("  Premium: " + FormatCurrency(d.LendersPolicy.Premium) + "\n")
	}

	if len(d.Endorsements) > 0 {
		b.WriteString("\nENDORSEMENTS\n")
		for _, e := range d.Endorsements {
			b.WriteString(fmt.Sprintf("  %s - %s: %s\n", e.Code, e.Name, FormatCurrency(e.Amount)))
		}
	}

	if d.CPL != nil {
		b.WriteString("\n" + d.CPL.LineItem + ": " + FormatCurrency(d.CPL.Amount) + "\n")
	}

	b.WriteString("\n" + line + "\n")
	b.WriteString("Title Insurance: " + FormatCurrency(d.Totals.TitleInsurance) + "\n")
	b.WriteString("Endorsements: " + FormatCurrency(d.Totals.Endorsements) + "\n")
	if d.CPL != nil {
		b.WriteString("CPL: " + FormatCurrency(d.Totals.CPL) + "\n")
	}
	b.WriteString("GRAND TOTAL: " + FormatCurrency(d.Totals.GrandTotal) + "\n")

	return b.String()
}
