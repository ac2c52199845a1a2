package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/gobuffalo/buffalo"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/models"
)

// swagger:operation GET /endorsements Endorsements EndorsementsList
// EndorsementsList
//
// list the endorsements offered for a state and underwriter. The `policy`
// parameter filters the catalog to endorsements available on an owner's or a
// lender's policy.
// ---
//
//	parameters:
//	  - name: state
//	    in: query
//	    required: true
//	  - name: underwriter
//	    in: query
//	    required: true
//	  - name: as_of
//	    in: query
//	    required: false
//	    description: effective date, e.g. 2025-06-01, default today
//	  - name: policy
//	    in: query
//	    required: false
//	    description: owner or lender
//	responses:
//	  '200':
//	    description: endorsement catalog
//	    schema:
//	      type: array
//	      items:
//	        "$ref": "#/definitions/Endorsement"
func endorsementsList(c buffalo.Context) error {
	state := strings.ToUpper(c.Params().Get("state"))
	if state == "" {
		return reportError(c, api.NewAppError(
			fmt.Errorf("endorsement listing requires a state"), api.ErrorMissingState, api.CategoryUser))
	}
	underwriter := c.Params().Get("underwriter")
	if underwriter == "" {
		return reportError(c, api.NewAppError(
			fmt.Errorf("endorsement listing requires an underwriter"), api.ErrorMissingUnderwriter, api.CategoryUser))
	}

	asOf := time.Now().UTC()
	if s := c.Params().Get("as_of"); s != "" {
		var err error
		if asOf, err = domain.ParseDate(s); err != nil {
			return reportError(c, api.NewAppError(err, api.ErrorInvalidDate, api.CategoryUser))
		}
	}

	var endorsements models.Endorsements
	if err := endorsements.FindEffective(models.Tx(c), state, underwriter, asOf); err != nil {
		return reportError(c, err)
	}

	catalog := endorsements.ConvertToAPI()
	switch c.Params().Get("policy") {
	case "owner":
		catalog = filterEndorsements(catalog, func(e api.Endorsement) bool { return !e.LenderOnly })
	case "lender":
		catalog = filterEndorsements(catalog, func(e api.Endorsement) bool { return !e.OwnerOnly })
	}

	return renderOk(c, catalog)
}

func filterEndorsements(in []api.Endorsement, keep func(api.Endorsement) bool) []api.Endorsement {
	out := make([]api.Endorsement, 0, len(in))
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
