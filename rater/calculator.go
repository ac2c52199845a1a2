package rater

import (
	"fmt"
	"time"

	"github.com/titleround/title-api/api"
)

// Request is a fully parsed calculation request. Dates are concrete times and
// money is integer cents; the transport layer owns the string-to-type
// conversion.
type Request struct {
	TransactionType api.TransactionType
	PropertyAddress string

	PurchasePrice int
	LoanAmount    int

	OwnerPolicyType      api.PolicyType
	LenderPolicyType     api.PolicyType
	IncludeLendersPolicy bool

	EndorsementCodes []string
	IncludeCPL       bool

	AsOf time.Time

	PriorPolicyDate   time.Time
	PriorPolicyAmount int

	County       string
	PropertyType api.PropertyType
	IsHoldOpen   bool
}

// Calculate prices a transaction against a rate book and assembles the
// closing disclosure. The computation is pure: everything it reads is in the
// request and the book.
func Calculate(book *RateBook, req Request) (api.ClosingDisclosure, error) {
	switch req.TransactionType {
	case api.TransactionTypePurchase:
		return calculatePurchase(book, req)
	case api.TransactionTypeRefinance:
		return calculateRefinance(book, req)
	}
	return api.ClosingDisclosure{}, api.NewAppError(
		fmt.Errorf("unknown transaction type %q", req.TransactionType),
		api.ErrorInvalidTransactionType,
		api.CategoryUser,
	)
}

func calculatePurchase(book *RateBook, req Request) (api.ClosingDisclosure, error) {
	if req.PurchasePrice <= 0 {
		return api.ClosingDisclosure{}, api.NewAppError(
			fmt.Errorf("purchase transactions require a purchase price"),
			api.ErrorMissingPurchasePrice,
			api.CategoryUser,
		)
	}
	if err := validatePolicyType(req.OwnerPolicyType); err != nil {
		return api.ClosingDisclosure{}, err
	}

	calc, err := ForState(book.State)
	if err != nil {
		return api.ClosingDisclosure{}, err
	}

	ownerParams := OwnerParams{
		Liability:         req.PurchasePrice,
		PolicyType:        req.OwnerPolicyType,
		AsOf:              req.AsOf,
		PriorPolicyDate:   req.PriorPolicyDate,
		PriorPolicyAmount: req.PriorPolicyAmount,
		County:            req.County,
		IsHoldOpen:        req.IsHoldOpen,
	}

	ownerPremium, err := calc.OwnersPremium(book, ownerParams)
	if err != nil {
		return api.ClosingDisclosure{}, err
	}
	reissueDiscount, err := calc.ReissueDiscount(book, ownerParams)
	if err != nil {
		return api.ClosingDisclosure{}, err
	}

	owners := &api.PolicyBreakdown{
		Type:            string(req.OwnerPolicyType),
		Liability:       req.PurchasePrice,
		Premium:         ownerPremium,
		LineItem:        calc.OwnersLineItem(ownerParams),
		ReissueDiscount: reissueDiscount,
	}

	var lenders *api.PolicyBreakdown
	if req.IncludeLendersPolicy {
		lenderPremium, err := calc.LendersPremium(book, LenderParams{
			LoanAmount:     req.LoanAmount,
			OwnerLiability: req.PurchasePrice,
			Concurrent:     true,
			PolicyType:     req.LenderPolicyType,
			AsOf:           req.AsOf,
			IsHoldOpen:     req.IsHoldOpen,
		})
		if err != nil {
			return api.ClosingDisclosure{}, err
		}
		lenders = &api.PolicyBreakdown{
			Type:      "concurrent",
			Liability: req.LoanAmount,
			Premium:   lenderPremium,
			LineItem:  "Lender's Title Insurance (Concurrent)",
		}
	}

	combined := ownerPremium
	if lenders != nil {
		combined += lenders.Premium
	}
	endorsements := PriceEndorsements(book, req.EndorsementCodes, EndorsementParams{
		Liability:       req.PurchasePrice,
		CombinedPremium: combined,
		PropertyType:    req.PropertyType,
	})

	var cpl *api.CPLBreakdown
	if req.IncludeCPL {
		amount, err := CPLAmount(book, req.PurchasePrice)
		if err != nil {
			return api.ClosingDisclosure{}, err
		}
		cpl = &api.CPLBreakdown{Amount: amount, LineItem: CPLLineItem}
	}

	return buildDisclosure(book, req, owners, lenders, endorsements, cpl), nil
}

func calculateRefinance(book *RateBook, req Request) (api.ClosingDisclosure, error) {
	if req.LoanAmount <= 0 {
		return api.ClosingDisclosure{}, api.NewAppError(
			fmt.Errorf("refinance transactions require a loan amount"),
			api.ErrorMissingLoanAmount,
			api.CategoryUser,
		)
	}

	premium, err := RefinancePremium(book, req.LoanAmount)
	if err != nil {
		return api.ClosingDisclosure{}, err
	}
	lenders := &api.PolicyBreakdown{
		Type:      "refinance",
		Liability: req.LoanAmount,
		Premium:   premium,
		LineItem:  RefinanceLineItem,
	}

	endorsements := PriceEndorsements(book, req.EndorsementCodes, EndorsementParams{
		Liability:       req.LoanAmount,
		CombinedPremium: premium,
		PropertyType:    req.PropertyType,
	})

	return buildDisclosure(book, req, nil, lenders, endorsements, nil), nil
}

func validatePolicyType(pt api.PolicyType) error {
	switch pt {
	case api.PolicyTypeStandard, api.PolicyTypeHomeowner, api.PolicyTypeExtended:
		return nil
	}
	return api.NewAppError(
		fmt.Errorf("unknown policy type %q", pt),
		api.ErrorInvalidPolicyType,
		api.CategoryUser,
	)
}

func buildDisclosure(book *RateBook, req Request, owners, lenders *api.PolicyBreakdown,
	endorsements []api.EndorsementCharge, cpl *api.CPLBreakdown) api.ClosingDisclosure {

	titleInsurance := 0
	if owners != nil {
		titleInsurance += owners.Premium
	}
	if lenders != nil {
		titleInsurance += lenders.Premium
	}
	endorsementTotal := EndorsementTotal(endorsements)
	cplTotal := 0
	if cpl != nil {
		cplTotal = cpl.Amount
	}

	return api.ClosingDisclosure{
		Transaction: api.TransactionSummary{
			Type:            req.TransactionType,
			State:           book.State,
			Underwriter:     book.Underwriter,
			PropertyAddress: req.PropertyAddress,
			PurchasePrice:   req.PurchasePrice,
			LoanAmount:      req.LoanAmount,
		},
		OwnersPolicy:  owners,
		LendersPolicy: lenders,
		Endorsements:  endorsements,
		CPL:           cpl,
		Totals: api.Totals{
			TitleInsurance: titleInsurance,
			Endorsements:   endorsementTotal,
			CPL:            cplTotal,
			GrandTotal:     roundTotalToDollar(titleInsurance + endorsementTotal + cplTotal),
		},
	}
}
