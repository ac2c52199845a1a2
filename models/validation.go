package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gobuffalo/validate/v3"

	"github.com/titleround/title-api/api"
)

var fieldValidators = map[string]validator.Func{
	"pricingType":     validatePricingType,
	"rateType":        validateRateType,
	"tableVariant":    validateTableVariant,
	"policyType":      validatePolicyType,
	"transactionType": validateTransactionType,
}

func validateModel(m interface{}) *validate.Errors {
	vErrs := validate.NewErrors()

	if err := mValidate.Struct(m); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			vErrs.Add(err.StructNamespace(), err.Error())
		}
	}
	return vErrs
}

// flattenPopErrors - pop validation errors are complex structures, this flattens them to a simple string
func flattenPopErrors(popErrs *validate.Errors) string {
	var msgs []string
	for key, val := range popErrs.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, strings.Join(val, ", ")))
	}
	return strings.Join(msgs, " |")
}

func validatePricingType(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.EndorsementPricingType); ok {
		_, valid := ValidEndorsementPricingTypes[value]
		return valid
	}
	return false
}

func validateRateType(field validator.FieldLevel) bool {
	value := field.Field().String()
	return value == "premium" || value == "basic"
}

func validateTableVariant(field validator.FieldLevel) bool {
	value := field.Field().String()
	return value == "original" || value == "reissue" || value == "region2"
}

func validatePolicyType(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.PolicyType); ok {
		_, valid := ValidPolicyTypes[value]
		return valid
	}
	return false
}

func validateTransactionType(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.TransactionType); ok {
		return value == api.TransactionTypePurchase || value == api.TransactionTypeRefinance
	}
	return false
}

var ValidEndorsementPricingTypes = map[api.EndorsementPricingType]struct{}{
	api.EndorsementPricingFlat:               {},
	api.EndorsementPricingNoCharge:           {},
	api.EndorsementPricingPercentage:         {},
	api.EndorsementPricingPercentageBasic:    {},
	api.EndorsementPricingPercentageCombined: {},
	api.EndorsementPricingPropertyTiered:     {},
}

var ValidPolicyTypes = map[api.PolicyType]struct{}{
	api.PolicyTypeStandard:  {},
	api.PolicyTypeHomeowner: {},
	api.PolicyTypeExtended:  {},
}
