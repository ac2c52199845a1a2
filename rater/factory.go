package rater

import "github.com/titleround/title-api/api"

// ForState returns the jurisdiction calculator for a state.
func ForState(state string) (StateCalculator, error) {
	switch state {
	case "CA":
		return caCalculator{}, nil
	case "AZ":
		return azCalculator{}, nil
	case "NC":
		return ncCalculator{}, nil
	case "FL":
		return flCalculator{}, nil
	case "TX":
		return txCalculator{}, nil
	}
	return nil, configError(api.ErrorUnsupportedState, "no calculator for state %s", state)
}
