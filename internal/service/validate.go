package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// validate checks the engine's input structs.  The custom tags reuse the
// console parsers so a value accepted at the prompt is accepted here.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("guestname", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseName("", fl.Field().String(), 2, 50)
		return err == nil
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		p, err := utils.ParsePhone("", fl.Field().String())
		return err == nil && p == fl.Field().String()
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	_ = v.RegisterValidation("deskemail", func(fl validator.FieldLevel) bool {
		e, err := utils.ParseEmail("", fl.Field().String())
		return err == nil && e == fl.Field().String()
	})
	return v
}

var fieldMessages = map[string]string{
	"guestname": "must be 2-50 letters, spaces, hyphens or periods",
	"phone":     "must be 10-15 digits",
	"deskemail": "must be a valid email address",
	"finite":    "must be a finite amount",
	"required":  "is required",
}

// checkStruct runs the struct tags on in and returns the first failure as a
// *utils.ValidationError.
func checkStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &utils.ValidationError{Message: err.Error()}
	}
	fe := verrs[0]
	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		msg = fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return &utils.ValidationError{Field: strings.ToLower(fe.Field()), Message: msg}
}

// checkStay validates the calendar fields of a stay and its ordering.
func checkStay(s model.Stay) error {
	switch {
	case !s.CheckIn.Valid():
		return &utils.ValidationError{Field: "check_in", Message: "not a calendar date"}
	case !s.CheckOut.Valid():
		return &utils.ValidationError{Field: "check_out", Message: "not a calendar date"}
	case !s.CheckInTime.Valid():
		return &utils.ValidationError{Field: "check_in_time", Message: "not a 24-hour time"}
	case !s.CheckOutTime.Valid():
		return &utils.ValidationError{Field: "check_out_time", Message: "not a 24-hour time"}
	}
	if s.CheckOut.Compare(s.CheckIn) <= 0 {
		return fmt.Errorf("%w: %s is not after %s", ErrInvalidStay, s.CheckOut, s.CheckIn)
	}
	return nil
}

func checkMoment(d model.Date, t model.TimeOfDay) error {
	if !d.Valid() {
		return &utils.ValidationError{Field: "date", Message: "not a calendar date"}
	}
	if !t.Valid() {
		return &utils.ValidationError{Field: "time", Message: "not a 24-hour time"}
	}
	return nil
}
