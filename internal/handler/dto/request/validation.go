package request

import (
	"reflect"
	"strings"

	"staybook/internal/domain/calendar"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom tags to gin's validator and makes
// validation errors report the json or form field name.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	v.RegisterTagNameFunc(fieldName)
	return v.RegisterValidation("calendardate", validateCalendarDate)
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func parseOptionalDate(s *string) (*calendar.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
