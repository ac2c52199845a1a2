// Package listeners wires the application's event listeners. Importing the
// package registers them.
package listeners

import (
	"github.com/gobuffalo/events"

	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/log"
)

type apiListener struct {
	name     string
	listener func(events.Event)
}

//
// Register new listener functions here.  Remember, though, that these groupings just
// describe what we want.  They don't make it happen this way. The listeners
// themselves still need to verify the event kind
//
var apiListeners = map[string][]apiListener{
	domain.EventApiCalculationCompleted: {
		{
			name:     "calculation-completed-log",
			listener: calculationCompleted,
		},
	},
	domain.EventApiRateBookSeeded: {
		{
			name:     "ratebook-seeded-log",
			listener: rateBookSeeded,
		},
	},
}

func init() {
	registerListeners()
}

func registerListeners() {
	for _, listeners := range apiListeners {
		for _, l := range listeners {
			if _, err := events.NamedListen(l.name, l.listener); err != nil {
				log.Errorf("failed registering listener %s: %s", l.name, err)
			}
		}
	}
}

func calculationCompleted(e events.Event) {
	if e.Kind != domain.EventApiCalculationCompleted {
		return
	}

	defer panicRecover(e.Kind)

	log.WithFields(map[string]interface{}{
		"state":       e.Payload["state"],
		"underwriter": e.Payload["underwriter"],
		"grand_total": e.Payload["grand_total"],
	}).Info(e.Message)
}

func rateBookSeeded(e events.Event) {
	if e.Kind != domain.EventApiRateBookSeeded {
		return
	}

	defer panicRecover(e.Kind)

	log.WithFields(map[string]interface{}{
		"state":       e.Payload["state"],
		"underwriter": e.Payload["underwriter"],
	}).Info(e.Message)
}

func panicRecover(name string) {
	if err := recover(); err != nil {
		log.Errorf("panic occurred in %s: %s", name, err)
	}
}
