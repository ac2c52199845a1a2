package actions

import (
	"github.com/gobuffalo/buffalo"

	"github.com/titleround/title-api/rater"
)

// swagger:operation GET /states States StatesList
// StatesList
//
// list the states the rating engine supports
// ---
//
//	responses:
//	  '200':
//	    description: supported state codes
//	    schema:
//	      type: array
//	      items:
//	        type: string
func statesList(c buffalo.Context) error {
	return renderOk(c, rater.SupportedStates())
}
