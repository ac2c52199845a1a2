package actions

import (
	"net/http"
	"testing"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/models"
)

func (as *ActionSuite) Test_CalculationsCreate() {
	models.CreateRateFixtures(as.DB, "NC", "TRG", effectiveDate)

	as.T().Run("purchase with lender, endorsement and CPL", func(t *testing.T) {
		res := as.JSON("/calculations").Post(api.CalculationRequest{
			TransactionType:  api.TransactionTypePurchase,
			State:            "NC",
			Underwriter:      "TRG",
			AsOfDate:         asOfParam,
			PurchasePrice:    15_000_000,
			LoanAmount:       12_000_000,
			OwnerPolicyType:  api.PolicyTypeStandard,
			LenderPolicyType: api.PolicyTypeStandard,
			EndorsementCodes: []string{"ALTA 9"},
			IncludeCPL:       true,
		})
		as.Equal(http.StatusOK, res.Code, "incorrect status code, body: %s", res.Body.String())

		var d api.ClosingDisclosure
		as.NoError(as.decodeBody(res.Body.Bytes(), &d))

		as.Equal("NC", d.Transaction.State)
		as.Equal("TRG", d.Transaction.Underwriter)

		as.NotNil(d.OwnersPolicy)
		as.Equal(60_000, d.OwnersPolicy.Premium)

		as.NotNil(d.LendersPolicy)
		as.Equal("concurrent", d.LendersPolicy.Type)
		as.Equal(2_850, d.LendersPolicy.Premium)

		as.Len(d.Endorsements, 1)
		as.Equal(2_300, d.Endorsements[0].Amount)

		as.NotNil(d.CPL)
		as.Equal(6_900, d.CPL.Amount)

		as.Equal(62_850, d.Totals.TitleInsurance)
		as.Equal(72_100, d.Totals.GrandTotal)
	})

	as.T().Run("extended policy uses the versioned multiplier", func(t *testing.T) {
		falsy := false
		res := as.JSON("/calculations").Post(api.CalculationRequest{
			TransactionType:      api.TransactionTypePurchase,
			State:                "NC",
			Underwriter:          "TRG",
			AsOfDate:             asOfParam,
			PurchasePrice:        15_000_000,
			OwnerPolicyType:      api.PolicyTypeExtended,
			IncludeLendersPolicy: &falsy,
		})
		as.Equal(http.StatusOK, res.Code, "incorrect status code, body: %s", res.Body.String())

		var d api.ClosingDisclosure
		as.NoError(as.decodeBody(res.Body.Bytes(), &d))

		as.Equal(75_000, d.OwnersPolicy.Premium)
		as.Nil(d.LendersPolicy)
	})

	as.T().Run("lender policy defaults off when there is no loan", func(t *testing.T) {
		res := as.JSON("/calculations").Post(api.CalculationRequest{
			TransactionType: api.TransactionTypePurchase,
			State:           "NC",
			Underwriter:     "TRG",
			AsOfDate:        asOfParam,
			PurchasePrice:   15_000_000,
			OwnerPolicyType: api.PolicyTypeStandard,
		})
		as.Equal(http.StatusOK, res.Code)

		var d api.ClosingDisclosure
		as.NoError(as.decodeBody(res.Body.Bytes(), &d))
		as.Nil(d.LendersPolicy)
	})

	as.T().Run("refinance", func(t *testing.T) {
		res := as.JSON("/calculations").Post(api.CalculationRequest{
			TransactionType: api.TransactionTypeRefinance,
			State:           "NC",
			Underwriter:     "TRG",
			AsOfDate:        asOfParam,
			LoanAmount:      30_000_000,
		})
		as.Equal(http.StatusOK, res.Code, "incorrect status code, body: %s", res.Body.String())

		var d api.ClosingDisclosure
		as.NoError(as.decodeBody(res.Body.Bytes(), &d))

		as.Nil(d.OwnersPolicy)
		as.NotNil(d.LendersPolicy)
		as.Equal("refinance", d.LendersPolicy.Type)
		as.Equal(45_000, d.LendersPolicy.Premium)
		as.Equal(45_000, d.Totals.GrandTotal)
	})
}

func (as *ActionSuite) Test_CalculationsCreate_Errors() {
	models.CreateRateFixtures(as.DB, "NC", "TRG", effectiveDate)

	tests := []struct {
		name     string
		body     api.CalculationRequest
		wantCode int
		wantKey  api.ErrorKey
	}{
		{
			name: "missing state",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				Underwriter:     "TRG",
				PurchasePrice:   15_000_000,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorMissingState,
		},
		{
			name: "missing underwriter",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				State:           "NC",
				PurchasePrice:   15_000_000,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorMissingUnderwriter,
		},
		{
			name: "bad as_of date",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				State:           "NC",
				Underwriter:     "TRG",
				AsOfDate:        "06/01/2025",
				PurchasePrice:   15_000_000,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorInvalidDate,
		},
		{
			name: "bad prior policy date",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				State:           "NC",
				Underwriter:     "TRG",
				AsOfDate:        asOfParam,
				PurchasePrice:   15_000_000,
				PriorPolicyDate: "long ago",
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorInvalidDate,
		},
		{
			name: "unsupported state",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				State:           "WA",
				Underwriter:     "TRG",
				AsOfDate:        asOfParam,
				PurchasePrice:   15_000_000,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorUnsupportedState,
		},
		{
			name: "unknown transaction type",
			body: api.CalculationRequest{
				TransactionType: "remortgage",
				State:           "NC",
				Underwriter:     "TRG",
				AsOfDate:        asOfParam,
				PurchasePrice:   15_000_000,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorInvalidTransactionType,
		},
		{
			name: "purchase without a price",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypePurchase,
				State:           "NC",
				Underwriter:     "TRG",
				AsOfDate:        asOfParam,
				OwnerPolicyType: api.PolicyTypeStandard,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorMissingPurchasePrice,
		},
		{
			name: "refinance without a loan",
			body: api.CalculationRequest{
				TransactionType: api.TransactionTypeRefinance,
				State:           "NC",
				Underwriter:     "TRG",
				AsOfDate:        asOfParam,
			},
			wantCode: http.StatusBadRequest,
			wantKey:  api.ErrorMissingLoanAmount,
		},
	}

	for _, tt := range tests {
		as.T().Run(tt.name, func(t *testing.T) {
			res := as.JSON("/calculations").Post(tt.body)
			as.Equal(tt.wantCode, res.Code, "incorrect status code, body: %s", res.Body.String())

			var appErr api.AppError
			as.NoError(as.decodeBody(res.Body.Bytes(), &appErr))
			as.Equal(tt.wantKey, appErr.Key)
		})
	}
}
