package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/events"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/log"
	"github.com/titleround/title-api/models"
	"github.com/titleround/title-api/rater"
)

// swagger:operation POST /calculations Calculations CalculationsCreate
// CalculationsCreate
//
// price a purchase or refinance transaction and return the closing disclosure
// ---
//
//	parameters:
//	  - name: calculation input
//	    in: body
//	    description: calculation request
//	    required: true
//	    schema:
//	      "$ref": "#/definitions/CalculationRequest"
//	responses:
//	  '200':
//	    description: the priced disclosure
//	    schema:
//	      "$ref": "#/definitions/ClosingDisclosure"
func calculationsCreate(c buffalo.Context) error {
	var input api.CalculationRequest
	if err := StrictBind(c, &input); err != nil {
		return reportError(c, err)
	}

	newExtra(c, "state", input.State)
	newExtra(c, "underwriter", input.Underwriter)
	newExtra(c, "transactionType", input.TransactionType)

	req, err := parseCalculationRequest(input)
	if err != nil {
		return reportError(c, err)
	}

	book, err := models.LoadRateBook(models.Tx(c), strings.ToUpper(input.State), input.Underwriter, req.AsOf)
	if err != nil {
		return reportError(c, err)
	}

	disclosure, err := rater.Calculate(book, req)
	if err != nil {
		return reportError(c, err)
	}

	e := events.Event{
		Kind:    domain.EventApiCalculationCompleted,
		Message: fmt.Sprintf("calculation completed: %s %s", book.State, input.TransactionType),
		Payload: events.Payload{
			"state":       book.State,
			"underwriter": book.Underwriter,
			"grand_total": disclosure.Totals.GrandTotal,
		},
	}
	emitEvent(c, e)

	return renderOk(c, disclosure)
}

// parseCalculationRequest converts the wire request into the engine's parsed
// form. Dates become concrete times here; the engine itself never sees a
// clock.
func parseCalculationRequest(input api.CalculationRequest) (rater.Request, error) {
	if input.State == "" {
		return rater.Request{}, api.NewAppError(
			fmt.Errorf("calculation requires a state"), api.ErrorMissingState, api.CategoryUser)
	}
	if input.Underwriter == "" {
		return rater.Request{}, api.NewAppError(
			fmt.Errorf("calculation requires an underwriter"), api.ErrorMissingUnderwriter, api.CategoryUser)
	}

	asOf := time.Now().UTC()
	if input.AsOfDate != "" {
		var err error
		if asOf, err = domain.ParseDate(input.AsOfDate); err != nil {
			return rater.Request{}, api.NewAppError(err, api.ErrorInvalidDate, api.CategoryUser)
		}
	}

	var priorPolicyDate time.Time
	if input.PriorPolicyDate != "" {
		var err error
		if priorPolicyDate, err = domain.ParseDate(input.PriorPolicyDate); err != nil {
			return rater.Request{}, api.NewAppError(err, api.ErrorInvalidDate, api.CategoryUser)
		}
	}

	ownerPolicyType := input.OwnerPolicyType
	if ownerPolicyType == "" {
		ownerPolicyType = api.PolicyTypeStandard
	}
	lenderPolicyType := input.LenderPolicyType
	if lenderPolicyType == "" {
		lenderPolicyType = api.PolicyTypeStandard
	}

	// Lender's policy defaults to included whenever there is a loan
	includeLenders := input.LoanAmount > 0
	if input.IncludeLendersPolicy != nil {
		includeLenders = *input.IncludeLendersPolicy
	}

	return rater.Request{
		TransactionType:      input.TransactionType,
		PropertyAddress:      input.PropertyAddress,
		PurchasePrice:        input.PurchasePrice,
		LoanAmount:           input.LoanAmount,
		OwnerPolicyType:      ownerPolicyType,
		LenderPolicyType:     lenderPolicyType,
		IncludeLendersPolicy: includeLenders,
		EndorsementCodes:     input.EndorsementCodes,
		IncludeCPL:           input.IncludeCPL,
		AsOf:                 asOf,
		PriorPolicyDate:      priorPolicyDate,
		PriorPolicyAmount:    input.PriorPolicyAmount,
		County:               input.County,
		PropertyType:         input.PropertyType,
		IsHoldOpen:           input.IsHoldOpen,
	}, nil
}

// emitEvent logs event emission failures but never fails the request over one.
func emitEvent(c buffalo.Context, e events.Event) {
	if err := events.Emit(e); err != nil {
		log.WithContext(c).WithFields(map[string]interface{}{"eventKind": e.Kind}).
			Errorf("error emitting event: %s", err)
	}
}
