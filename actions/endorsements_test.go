package actions

import (
	"net/http"
	"testing"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/models"
)

func (as *ActionSuite) Test_EndorsementsList() {
	models.CreateRateFixtures(as.DB, "NC", "TRG", effectiveDate)

	ownerOnly := models.Endorsement{
		State: "NC", Underwriter: "TRG",
		Code: "CLTA 100", Name: "Comprehensive",
		PricingType: api.EndorsementPricingPercentage, Percentage: 0.30,
		OwnerOnly:     true,
		EffectiveDate: effectiveDate,
	}
	as.NoError(ownerOnly.Create(as.DB))

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantCodes []string
		wantError api.ErrorKey
	}{
		{
			name:      "full catalog",
			query:     "?state=NC&underwriter=TRG&as_of=" + asOfParam,
			wantCode:  http.StatusOK,
			wantCodes: []string{"ALTA 9", "CLTA 100"},
		},
		{
			name:      "lender filter drops owner-only",
			query:     "?state=NC&underwriter=TRG&as_of=" + asOfParam + "&policy=lender",
			wantCode:  http.StatusOK,
			wantCodes: []string{"ALTA 9"},
		},
		{
			name:      "owner filter keeps both",
			query:     "?state=NC&underwriter=TRG&as_of=" + asOfParam + "&policy=owner",
			wantCode:  http.StatusOK,
			wantCodes: []string{"ALTA 9", "CLTA 100"},
		},
		{
			name:      "lowercase state is normalized",
			query:     "?state=nc&underwriter=TRG&as_of=" + asOfParam,
			wantCode:  http.StatusOK,
			wantCodes: []string{"ALTA 9", "CLTA 100"},
		},
		{
			name:      "no rows for a later underwriter",
			query:     "?state=NC&underwriter=Nobody&as_of=" + asOfParam,
			wantCode:  http.StatusOK,
			wantCodes: []string{},
		},
		{
			name:      "missing state",
			query:     "?underwriter=TRG",
			wantCode:  http.StatusBadRequest,
			wantError: api.ErrorMissingState,
		},
		{
			name:      "missing underwriter",
			query:     "?state=NC",
			wantCode:  http.StatusBadRequest,
			wantError: api.ErrorMissingUnderwriter,
		},
		{
			name:      "bad as_of date",
			query:     "?state=NC&underwriter=TRG&as_of=June+1",
			wantCode:  http.StatusBadRequest,
			wantError: api.ErrorInvalidDate,
		},
	}

	for _, tt := range tests {
		as.T().Run(tt.name, func(t *testing.T) {
			res := as.JSON("/endorsements" + tt.query).Get()
			as.Equal(tt.wantCode, res.Code, "incorrect status code, body: %s", res.Body.String())

			if tt.wantError != "" {
				var appErr api.AppError
				as.NoError(as.decodeBody(res.Body.Bytes(), &appErr))
				as.Equal(tt.wantError, appErr.Key)
				return
			}

			var catalog []api.Endorsement
			as.NoError(as.decodeBody(res.Body.Bytes(), &catalog))
			codes := make([]string, len(catalog))
			for i, e := range catalog {
				codes[i] = e.Code
			}
			as.Equal(tt.wantCodes, codes)
		})
	}
}
