// Package validation checks submitted payloads against per-field rules and
// reports every violation at once rather than stopping at the first.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/driving-records/internal/domain"
	apperrors "github.com/spec-kit/driving-records/pkg/util/errorutil"
)

var (
	postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][0-9A-Z]?[ ]?[0-9][A-Z]{2}$`)
	licencePattern  = regexp.MustCompile(`^[A-Z0-9]{16}$`)
)

const defaultMessage = "Invalid value"

var messages = map[string]string{
	"preferredName":      "Must provide a preferred name",
	"firstName":          "Must provide a first name",
	"lastName":           "Must provide a last name",
	"mobile":             "Must provide a valid mobile phone number",
	"email":              "Must provide a valid email address",
	"firstLineOfAddress": "Must provide the first line of address",
	"postcode":           "Must provide a valid postcode",
	"drivingLicenceNum":  "Must provide a valid driving licence number with 16 characters",
	"testPreparation":    "Must indicate true or false",
	"skillsImprovement":  "Must indicate true or false",
}

// Validator runs the rule sets for enquiries and customers. It holds no
// per-request state and is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the postcode and licence rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("postcode", matches(postcodePattern))
	_ = v.RegisterValidation("licence", matches(licencePattern))
	return &Validator{validate: v}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Enquiry returns every rule violation in the payload, or nil when valid.
func (v *Validator) Enquiry(in domain.EnquiryInput) []apperrors.Violation {
	return v.check(in)
}

// Customer returns every rule violation in the payload, or nil when valid.
func (v *Validator) Customer(in domain.CustomerInput) []apperrors.Violation {
	return v.check(in)
}

// check evaluates each rule of each field on its own, so a field failing two
// rules yields two violations.
func (v *Validator) check(s any) []apperrors.Violation {
	val := reflect.Indirect(reflect.ValueOf(s))
	typ := val.Type()

	var violations []apperrors.Violation
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		tag := fld.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}
		name := jsonName(fld)
		for _, rule := range splitRules(tag) {
			err := v.validate.Var(val.Field(i).Interface(), rule)
			if err == nil {
				continue
			}
			var fieldErrs validator.ValidationErrors
			if !errors.As(err, &fieldErrs) {
				violations = append(violations, apperrors.Violation{Field: name, Message: defaultMessage})
				continue
			}
			for _, fe := range fieldErrs {
				field := name + fe.Field()
				violations = append(violations, apperrors.Violation{
					Field:   field,
					Message: messageFor(field),
				})
			}
		}
	}
	return violations
}

// splitRules breaks a tag into independently evaluated rules. A dive and the
// rules after it apply to elements and stay together.
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	rules := make([]string, 0, len(parts))
	for i, p := range parts {
		if p == "dive" {
			rules = append(rules, strings.Join(parts[i:], ","))
			break
		}
		rules = append(rules, p)
	}
	return rules
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

func messageFor(field string) string {
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return defaultMessage
}

// DecodeViolations turns a JSON decoding failure into violations so malformed
// payloads are reported the same way as rule failures.
func DecodeViolations(err error) []apperrors.Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []apperrors.Violation{{Field: typeErr.Field, Message: messageFor(typeErr.Field)}}
	}
	return []apperrors.Violation{{Field: "body", Message: "Malformed request body"}}
}
