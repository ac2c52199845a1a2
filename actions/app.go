// TitleRound API
//
// Rate resolution and premium calculation for title insurance.
//
//	Schemes: https
//	Host: localhost
//	BasePath: /
//	Version: 0.0.1
//	License: MIT http://opensource.org/licenses/MIT
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package actions

import (
	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/logger"
	paramlogger "github.com/gobuffalo/mw-paramlogger"

	"github.com/gobuffalo/buffalo-pop/v3/pop/popmw"
	contenttype "github.com/gobuffalo/mw-contenttype"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"

	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/log"
	"github.com/titleround/title-api/models"
)

var app *buffalo.App

// App is where all routes and middleware for buffalo should be defined.
//
// Routing, middleware, groups, etc... are declared TOP -> DOWN.
// This means if you add a middleware to `app` *after* declaring a
// group, that group will NOT have that new middleware.
func App() *buffalo.App {
	if app == nil {
		app = buffalo.New(buffalo.Options{
			Env:    domain.Env.GoEnv,
			Logger: appLogger(),
			PreWares: []buffalo.PreWare{
				cors.New(cors.Options{
					AllowCredentials: true,
					AllowedOrigins:   []string{domain.Env.UIURL},
					AllowedMethods:   []string{"HEAD", "GET", "POST", "PUT", "PATCH", "DELETE"},
					AllowedHeaders:   []string{"*"},
				}).Handler,
			},
			SessionName:  "_title_api_session",
			SessionStore: sessions.NewCookieStore([]byte(domain.Env.SessionSecret)),
		})

		registerCustomErrorHandler(app)

		// Report panics and 5xx responses to Sentry
		app.Use(log.SentryMiddleware)

		// Log request parameters (filters apply).
		app.Use(paramlogger.ParameterLogger)

		// Set the request content type to JSON
		app.Use(contenttype.Set("application/json"))

		// Wraps each request in a transaction.
		app.Use(popmw.Transaction(models.DB))

		app.GET("/", homeHandler)
		app.GET("/status", statusHandler)
		app.GET("/states", statesList)
		app.GET("/endorsements", endorsementsList)
		app.POST("/calculations", calculationsCreate)
	}

	return app
}

// appLogger builds the Buffalo logger at the configured level, falling back
// to info when LOG_LEVEL is unparseable.
func appLogger() logger.FieldLogger {
	lvl, err := logger.ParseLevel(domain.Env.LogLevel)
	if err != nil {
		lvl = logger.InfoLevel
	}
	return logger.New(lvl)
}
