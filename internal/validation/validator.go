package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

const (
	departmentTag = "department"
	contactTag    = "contact"
	requiredTag   = "required"
)

// Violation describes single invalid field
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	tag     string
}

// PayloadError holds all violations found in validated payload
type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	missing := e.MissingFields()
	if len(missing) > 0 && len(missing) == len(e.violations) {
		return fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))
	}

	messages := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		messages = append(messages, v.Message)
	}
	return fmt.Sprintf("Validation error: %s", strings.Join(messages, ". "))
}

// Violation appends violation to the error
func (e *PayloadError) Violation(v Violation) {
	e.violations = append(e.violations, v)
}

// Violations returns all collected violations
func (e *PayloadError) Violations() []Violation {
	return e.violations
}

// MissingFields returns names of required fields which were absent or empty
func (e *PayloadError) MissingFields() []string {
	fields := make([]string, 0)
	for _, v := range e.violations {
		if v.tag == requiredTag || v.tag == contactTag {
			fields = append(fields, v.Field)
		}
	}
	return fields
}

// Policy configures schema rules which are owner decisions rather than fixed constraints
type Policy struct {
	Departments          []string
	RequireContactFields bool
}

// EchoValidator validates structs and translates violations to english messages
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds EchoValidator on top of configured validator and translator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// New builds EchoValidator with english translations and case schema rules
func New(p Policy) (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations - %w", err)
	}

	if err := registerDepartment(v, trans, p.Departments); err != nil {
		return nil, err
	}

	if err := registerContact(v, trans, p.RequireContactFields); err != nil {
		return nil, err
	}

	return Echo(v, trans), nil
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0)}
	for _, e := range ve {
		pldErr.Violation(Violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
			tag:     e.Tag(),
		})
	}
	return pldErr
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return f.Name
	}
	return name
}

func registerDepartment(v *validator.Validate, trans ut.Translator, departments []string) error {
	allowed := make(map[string]struct{}, len(departments))
	for _, d := range departments {
		allowed[d] = struct{}{}
	}

	err := v.RegisterValidation(departmentTag, func(fl validator.FieldLevel) bool {
		if len(allowed) == 0 {
			return true
		}
		_, ok := allowed[fl.Field().String()]
		return ok
	})
	if err != nil {
		return fmt.Errorf("failed to register %s validation - %w", departmentTag, err)
	}

	return v.RegisterTranslation(departmentTag, trans, func(t ut.Translator) error {
		return t.Add(departmentTag, "{0} is not a valid department", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(departmentTag, fmt.Sprint(fe.Value()))
		return msg
	})
}

func registerContact(v *validator.Validate, trans ut.Translator, required bool) error {
	err := v.RegisterValidation(contactTag, func(fl validator.FieldLevel) bool {
		return !required || strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		return fmt.Errorf("failed to register %s validation - %w", contactTag, err)
	}

	return v.RegisterTranslation(contactTag, trans, func(t ut.Translator) error {
		return t.Add(contactTag, "{0} is a required field", true)
	}, func(t ut.Translator, fe validator.FieldError) string {
		msg, _ := t.T(contactTag, fe.Field())
		return msg
	})
}
