package schemas

import (
	"fmt"
	"reflect"
	"strings"

	"crm/src/models"
	"crm/src/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	for tag, list := range choiceTags {
		list := list
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, choice := range list {
				if value == choice {
					return true
				}
			}
			return false
		})
	}

	// An empty date is accepted: on create it means no date, on update it
	// clears the stored one.
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseOptionalDate(fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("email_or_empty", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || v.Var(value, "email") == nil
	})

	return v
}

var choiceTags = map[string][]string{
	"account_type":  models.AccountTypes,
	"risk_rating":   models.RiskRatings,
	"stage":         models.OpportunityStages,
	"quote_status":  models.QuoteStatuses,
	"currency":      models.Currencies,
	"activity_type": models.ActivityTypes,
}

// Validate checks a request struct and turns failures into a single 422
// error naming every offending field.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return utils.BadRequest(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, describe(fe))
	}
	return utils.UnprocessableEntity(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must not be empty"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "email", "email_or_empty":
		return field + " must be a valid email address"
	case "date":
		return field + " must be a date in YYYY-MM-DD format"
	}
	if list, ok := choiceTags[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(list, ", "))
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

func orDefault(s *string, fallback string) {
	if *s == "" {
		*s = fallback
	}
}
