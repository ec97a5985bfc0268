package service

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ruleKeys maps validation tags to the suffix of their message key, so the
// "notblank" rule on "email" reports "email.notBlank".
var ruleKeys = map[string]string{
	"notblank": "notBlank",
	"email":    "format",
	"password": "pattern",
}

// ruleExprs overrides how a tag is evaluated. An empty email is left to
// the notblank rule, so a blank email reports a single failure.
var ruleExprs = map[string]string{
	"email": "omitempty,email",
}

// Validator checks request structs and reports every failing rule per
// field rather than stopping at the first one.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a Validator with the account rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("password", password)
	return &Validator{v: v}
}

// Struct validates s, a struct or pointer to struct whose fields carry
// `validate` tags. It returns a *ValidationError or nil.
func (val *Validator) Struct(s any) error {
	rv := reflect.Indirect(reflect.ValueOf(s))
	rt := rv.Type()

	var fields []FieldError
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("validate")
		if tag == "" {
			continue
		}
		name := jsonName(sf)
		for _, rule := range strings.Split(tag, ",") {
			if err := val.v.Var(rv.Field(i).Interface(), ruleExpr(rule)); err != nil {
				fields = append(fields, FieldError{Field: name, Key: name + "." + ruleKey(rule)})
			}
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func ruleExpr(rule string) string {
	if e, ok := ruleExprs[rule]; ok {
		return e
	}
	return rule
}

func ruleKey(rule string) string {
	if k, ok := ruleKeys[rule]; ok {
		return k
	}
	return rule
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// password accepts 8 to 16 characters with at least one letter, one digit
// and one symbol, and no whitespace.
func password(fl validator.FieldLevel) bool {
	return ValidPassword(fl.Field().String())
}

// ValidPassword reports whether s satisfies the password policy.
func ValidPassword(s string) bool {
	if n := utf8.RuneCountInString(s); n < 8 || n > 16 {
		return false
	}
	var letter, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case r >= '0' && r <= '9':
			digit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			letter = true
		case r != '_':
			symbol = true
		}
	}
	return letter && digit && symbol
}
