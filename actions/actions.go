package actions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/gobuffalo/buffalo"
	"github.com/gobuffalo/buffalo/render"

	"github.com/titleround/title-api/api"
	"github.com/titleround/title-api/domain"
	"github.com/titleround/title-api/log"
)

var r = render.New(render.Options{
	DefaultContentType: "application/json",
})

// StrictBind hydrates a struct with the values from a POST request, failing on
// fields the destination struct does not declare.
func StrictBind(c buffalo.Context, dest interface{}) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		return api.NewAppError(err, api.ErrorInvalidRequestBody, api.CategoryUser)
	}
	return nil
}

// reportError logs an error with details and renders it with buffalo.Render.
func reportError(c buffalo.Context, err error) error {
	appErr, ok := err.(*api.AppError)
	if !ok {
		appErr = appErrorFromErr(err)
	}
	appErr.SetHttpStatusFromCategory()

	if appErr.Extras == nil {
		appErr.Extras = map[string]interface{}{}
	}

	appErr.Extras = domain.MergeExtras([]map[string]interface{}{domain.GetExtras(c), appErr.Extras})
	appErr.Extras["function"] = functionName(2)
	appErr.Extras["key"] = appErr.Key
	appErr.Extras["status"] = appErr.HttpStatus
	appErr.Extras["method"] = c.Request().Method
	appErr.Extras["URI"] = c.Request().RequestURI

	entry := log.WithContext(c).WithFields(appErr.Extras)
	if appErr.HttpStatus >= 500 {
		entry.Error(appErr.Error())
	} else {
		entry.Warning(appErr.Error())
	}

	appErr.LoadMessage()

	// clear out debugging info if not in development or test
	if domain.Env.GoEnv == domain.EnvDevelopment || domain.Env.GoEnv == domain.EnvTest {
		if appErr.Err != nil {
			appErr.DebugMsg = appErr.Err.Error()
		}
	} else {
		appErr.Extras = map[string]interface{}{}
	}

	return c.Render(appErr.HttpStatus, r.JSON(appErr))
}

func appErrorFromErr(err error) *api.AppError {
	return &api.AppError{
		Err:        err,
		HttpStatus: http.StatusInternalServerError,
		Key:        api.ErrorUnknown,
		DebugMsg:   err.Error(),
	}
}

func newExtra(c buffalo.Context, key string, e interface{}) {
	domain.NewExtra(c, key, e)
}

// functionName provides the filename, line number, and function name of the
// caller, skipping the top `skip` functions on the stack.
func functionName(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?"
	}

	fn := runtime.FuncForPC(pc)
	return fmt.Sprintf("%s:%d %s", file, line, fn.Name())
}

func renderOk(c buffalo.Context, v interface{}) error {
	return c.Render(http.StatusOK, r.JSON(v))
}
