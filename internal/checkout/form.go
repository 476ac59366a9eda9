package checkout

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form carries the checkout fields. Apartment is the only optional one.
type Form struct {
	Email      string `form:"email" validate:"required,email"`
	FirstName  string `form:"firstName" validate:"required"`
	LastName   string `form:"lastName" validate:"required"`
	Address    string `form:"address" validate:"required"`
	Apartment  string `form:"apartment"`
	City       string `form:"city" validate:"required"`
	PostalCode string `form:"postalCode" validate:"required"`
	Phone      string `form:"phone" validate:"required,phone"`
}

// phone accepts 7 to 15 digits once spaces, parens and dashes are stripped.
var rePhone = regexp.MustCompile(`^\d{7,15}$`)

var stripPhone = strings.NewReplacer(" ", "", "(", "", ")", "", "-", "")

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(stripPhone.Replace(fl.Field().String()))
	})
	return v
}

var messages = map[string]string{
	"Email.required":      "El correo es obligatorio",
	"Email.email":         "Correo inválido",
	"FirstName.required":  "El nombre es obligatorio",
	"LastName.required":   "El apellido es obligatorio",
	"Address.required":    "La dirección es obligatoria",
	"City.required":       "La ciudad es obligatoria",
	"PostalCode.required": "El código postal es obligatorio",
	"Phone.required":      "El teléfono es obligatorio",
	"Phone.phone":         "Teléfono inválido",
}

// Validate runs every field validator and returns inline messages keyed by
// form field name. An empty map means the form may be submitted.
func Validate(f Form) map[string]string {
	errs := map[string]string{}
	err := formValidator.Struct(f)
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Formulario inválido"
		return errs
	}
	for _, fe := range verrs {
		name := formFieldName(fe.StructField())
		if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			errs[name] = msg
		} else {
			errs[name] = "Campo inválido"
		}
	}
	return errs
}

// FieldError validates a single field, for blur-time feedback.
func FieldError(f Form, field string) string {
	return Validate(f)[field]
}

var formValidator = newValidator()

func formFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
