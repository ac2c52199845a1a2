package actions

import (
	"fmt"
	"net/http"

	"github.com/titleround/title-api/domain"
)

func (as *ActionSuite) Test_HomeHandler() {
	res := as.JSON("/").Get()

	as.Equal(http.StatusOK, res.Code)
	as.Contains(res.Body.String(), fmt.Sprintf("Welcome to the %s API", domain.Env.AppName))
}

func (as *ActionSuite) Test_StatusHandler() {
	res := as.JSON("/status").Get()

	as.Equal(http.StatusOK, res.Code)

	var body map[string]string
	as.NoError(as.decodeBody(res.Body.Bytes(), &body))
	as.Equal("ok", body["status"])
	as.NotEmpty(body["commit"])
}

func (as *ActionSuite) Test_StatesList() {
	res := as.JSON("/states").Get()

	as.Equal(http.StatusOK, res.Code)

	var states []string
	as.NoError(as.decodeBody(res.Body.Bytes(), &states))
	as.Equal([]string{"AZ", "CA", "FL", "NC", "TX"}, states)
}
