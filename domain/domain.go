package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/envy"
	"github.com/gofrs/uuid"
	"github.com/kelseyhightower/envconfig"
)

var extrasLock = sync.RWMutex{}

// Commit is the git commit hash, set at build time with ldflags. It tags
// Sentry releases.
var Commit = "local"

// BuffaloContextType is a custom type used as a value key passed to context.WithValue as per the recommendations
// in the function docs for that function: https://golang.org/pkg/context/#WithValue
type BuffaloContextType string

// BuffaloContext is the key for the call to context.WithValue
const BuffaloContext = BuffaloContextType("BuffaloContext")

// Context keys
const (
	ContextKeyExtras = "extras"
	ContextKeyTx     = "tx"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

const (
	CurrencyFactor = 100
	DateFormat     = "2006-01-02"

	// DaysPerYear is the average year length used for reissue eligibility windows
	DaysPerYear = 365.25
)

// Event kinds emitted through gobuffalo/events
const (
	EventApiCalculationCompleted = "api:calculation:completed"
	EventApiRateBookSeeded       = "api:ratebook:seeded"

	EventPayloadID = "id"
)

// Env Holds the values of environment variables
var Env struct {
	GoEnv      string `ignored:"true"`
	ApiBaseURL string `default:"http://localhost:3000" split_words:"true"`
	AppName    string `default:"TitleRound" split_words:"true"`
	LogLevel   string `default:"debug" split_words:"true"`
	ServerPort int    `default:"3000" split_words:"true"`

	SessionSecret string `default:"not-so-secret" split_words:"true"`
	UIURL         string `default:"http://missing.ui.url"`

	SentryDSN        string `default:"" split_words:"true"`
	SentryServerRoot string `default:"" split_words:"true"`

	DisableTLS bool `default:"true" split_words:"true"`
}

func init() {
	readEnv()
}

// readEnv loads environment data into `Env`
func readEnv() {
	err := envconfig.Process("", &Env)
	if err != nil {
		log.Fatal(errors.New("error loading env vars: " + err.Error()))
	}

	// Doing this separately to avoid needing two environment variables for the same thing
	Env.GoEnv = envy.Get("GO_ENV", EnvDevelopment)
}

func getBuffaloContext(ctx context.Context) buffalo.Context {
	bc, ok := ctx.Value(BuffaloContext).(buffalo.Context)
	if ok {
		return bc
	}

	// Doesn't have a BuffaloContext value, so it must be the actual BuffaloContext
	return ctx.(buffalo.Context)
}

// NewExtra Sets a new key-value pair in the `extras` entry of the context
func NewExtra(ctx context.Context, key string, e interface{}) {
	c := getBuffaloContext(ctx)
	extras := GetExtras(c)

	extrasLock.Lock()
	defer extrasLock.Unlock()
	extras[key] = e

	c.Set(ContextKeyExtras, extras)
}

// GetExtras returns the `extras` entry of the context, or an empty map
func GetExtras(c buffalo.Context) map[string]interface{} {
	extras, _ := c.Value(ContextKeyExtras).(map[string]interface{})
	if extras == nil {
		extras = map[string]interface{}{}
	}

	return extras
}

// GetUUID creates a new, unique version 4 (random) UUID and returns it
// as a uuid.UUID. Errors are ignored.
func GetUUID() uuid.UUID {
	id, err := uuid.NewV4()
	if err != nil {
		log.Printf("error creating new uuid ... %v", err)
	}
	return id
}

// IsOtherThanNoRows returns false if the error is nil or is just reporting that there
// were no rows in the result set for a sql query.
func IsOtherThanNoRows(err error) bool {
	if err == nil {
		return false
	}

	if strings.Contains(err.Error(), sql.ErrNoRows.Error()) {
		return false
	}

	return true
}

// MergeExtras returns a single map with all the key-value pairs of the input maps.
// Key-value pairs in later maps overwrite matching ones from earlier maps.
func MergeExtras(extras []map[string]interface{}) map[string]interface{} {
	allExtras := map[string]interface{}{}

	if len(extras) == 1 {
		return extras[0]
	}

	for _, e := range extras {
		for k, v := range e {
			allExtras[k] = v
		}
	}

	return allExtras
}

// IsStringInSlice iterates over a slice of strings, looking for the given
// string. If found, true is returned. Otherwise, false is returned.
func IsStringInSlice(needle string, haystack []string) bool {
	for _, hs := range haystack {
		if needle == hs {
			return true
		}
	}

	return false
}

// IsProduction returns true if the GO_ENV is production
func IsProduction() bool {
	return Env.GoEnv == EnvProduction
}

// ParseDate parses a date string in the canonical wire format (2006-01-02).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected format %s", s, DateFormat)
	}
	return t, nil
}

// WholeYearsBetween returns the number of whole average-length years between two
// dates, floored. Used for reissue eligibility windows.
func WholeYearsBetween(from, to time.Time) int {
	if from.After(to) {
		return 0
	}
	days := to.Sub(from).Hours() / 24
	return int(days / DaysPerYear)
}
