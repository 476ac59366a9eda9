package checkout

import "testing"

func validForm() Form {
	return Form{
		Email:      "ana@example.com",
		FirstName:  "Ana",
		LastName:   "García",
		Address:    "Av. Reforma 123",
		City:       "Ciudad de México",
		PostalCode: "06600",
		Phone:      "(55) 123-4567",
	}
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	if errs := Validate(validForm()); len(errs) != 0 {
		t.Fatalf("want no errors, got %v", errs)
	}
}

func TestValidateApartmentOptional(t *testing.T) {
	f := validForm()
	f.Apartment = ""
	if errs := Validate(f); len(errs) != 0 {
		t.Fatalf("apartment must be optional, got %v", errs)
	}
}

func TestValidateRequiredMessages(t *testing.T) {
	errs := Validate(Form{})

	want := map[string]string{
		"email":      "El correo es obligatorio",
		"firstName":  "El nombre es obligatorio",
		"lastName":   "El apellido es obligatorio",
		"address":    "La dirección es obligatoria",
		"city":       "La ciudad es obligatoria",
		"postalCode": "El código postal es obligatorio",
		"phone":      "El teléfono es obligatorio",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("%s: want %q, got %q", field, msg, errs[field])
		}
	}
	if _, ok := errs["apartment"]; ok {
		t.Error("apartment should never error")
	}
}

func TestValidateEmailFormat(t *testing.T) {
	f := validForm()
	f.Email = "no-at-sign"
	if got := Validate(f)["email"]; got != "Correo inválido" {
		t.Fatalf("want email format error, got %q", got)
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"5512345678", true},
		{"(55) 123-4567", true},
		{"55 1234 5678", true},
		{"123456", false},           // too short after stripping
		{"1234567890123456", false}, // too long
		{"55-1234-ABCD", false},     // letters survive the strip
		{"+52 55 1234 5678", false}, // plus sign is not stripped
	}
	for _, tc := range cases {
		f := validForm()
		f.Phone = tc.phone
		errs := Validate(f)
		if tc.ok && len(errs) != 0 {
			t.Errorf("%q: want valid, got %v", tc.phone, errs)
		}
		if !tc.ok && errs["phone"] != "Teléfono inválido" {
			t.Errorf("%q: want phone error, got %v", tc.phone, errs)
		}
	}
}

func TestFieldError(t *testing.T) {
	f := validForm()
	f.Email = ""
	if got := FieldError(f, "email"); got != "El correo es obligatorio" {
		t.Fatalf("want email message, got %q", got)
	}
	if got := FieldError(f, "phone"); got != "" {
		t.Fatalf("phone should be clean, got %q", got)
	}
}
