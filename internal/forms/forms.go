package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a lowercased field name to a user-facing message. A nil
// map means the form passed validation.
type Errors map[string]string

type SignupForm struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type RequestForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs the declarative field rules and returns one message per
// failing field. It never returns an error: bad input is a normal
// outcome here, not a fault.
func Validate(form any) Errors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors{"form": "Invalid input"}
	}
	errs := Errors{}
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}
