// Package quote turns a quote request into the outbound WhatsApp and e-mail
// links the contact form hands to the browser.
package quote

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrMissingName is returned by Validate when the client name is blank.
	ErrMissingName = errors.New("quote: name is required")
	// ErrMissingPhone is returned by Validate when the phone is blank.
	ErrMissingPhone = errors.New("quote: phone is required")
)

// ValidationMessage is shown to visitors when Validate fails.
const ValidationMessage = "Por favor completa al menos tu nombre y teléfono."

// EquipmentOptions are the generic choices offered by the contact form's
// equipment select, besides the machine preselected from a detail page.
var EquipmentOptions = []Option{
	{Value: "Excavadora", Label: "Excavadora"},
	{Value: "Retroexcavadora", Label: "Retroexcavadora"},
	{Value: "Cargador Frontal", Label: "Cargador Frontal"},
	{Value: "Camión Aljibe", Label: "Camión Aljibe"},
	{Value: "Martillo Hidráulico", Label: "Martillo Hidráulico"},
	{Value: "Otro", Label: "Otro / Varios"},
}

// Option is a select option.
type Option struct {
	Value string
	Label string
}

// FormData is what a visitor typed into the contact form. It only lives for
// the duration of one request.
type FormData struct {
	Name      string
	RUT       string
	Phone     string
	Email     string
	Equipment string
	Duration  string
	Location  string
	Details   string
}

// FromValues reads the contact form fields, trimming surrounding whitespace.
func FromValues(v url.Values) FormData {
	get := func(key string) string { return strings.TrimSpace(v.Get(key)) }
	return FormData{
		Name:      get("name"),
		RUT:       get("rut"),
		Phone:     get("phone"),
		Email:     get("email"),
		Equipment: get("equipment"),
		Duration:  get("duration"),
		Location:  get("location"),
		Details:   get("details"),
	}
}

// Validate checks the two fields a quote cannot go out without.
func (f FormData) Validate() error {
	var errs []error
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if strings.TrimSpace(f.Phone) == "" {
		errs = append(errs, ErrMissingPhone)
	}
	return errors.Join(errs...)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
