package actions

import (
	"fmt"

	"github.com/gobuffalo/buffalo"

	"github.com/titleround/title-api/domain"
)

// homeHandler is a default handler to serve up a home page.
func homeHandler(c buffalo.Context) error {
	message := fmt.Sprintf("Welcome to the %s API", domain.Env.AppName)
	return renderOk(c, map[string]string{"message": message})
}

// swagger:operation GET /status Status Status
// Status
//
// report service health and the running commit
// ---
//
//	responses:
//	  '200':
//	    description: service status
func statusHandler(c buffalo.Context) error {
	return renderOk(c, map[string]string{
		"status": "ok",
		"commit": domain.Commit,
	})
}
