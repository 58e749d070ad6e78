// Package validate provides struct-tag validation for user input.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required                 field must not be zero/empty
//	min=N                    string: min char length | number: min value
//	max=N                    string: max char length | number: max value
//	in=a,b,c                 value must be one of the listed items
//	required_if=field,value  required when the sibling json field equals value
//
// Example:
//
//	type CheckoutInput struct {
//	    CustomerName    string `json:"customer_name"    validate:"required,max=120"`
//	    DeliveryType    string `json:"delivery_type"    validate:"required,in=local,delivery"`
//	    DeliveryAddress string `json:"delivery_address" validate:"required_if=delivery_type,delivery"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		for _, rule := range splitRules(tag) {
			if msg := applyRule(rule, name, value, rv); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value, parent reflect.Value) string {
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "required_if":
		sibling, expect, ok := strings.Cut(param, ",")
		if !ok {
			return ""
		}
		if siblingValue(parent, sibling) == expect && isEmpty(v) {
			return fmt.Sprintf("The %s field is required when %s is %s.", field, sibling, expect)
		}

	case "min":
		n, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return ""
		}
		if size, isStr := length(v); isStr {
			if float64(size) < n {
				return fmt.Sprintf("The %s field must be at least %s characters.", field, param)
			}
		} else if num, ok := numeric(v); ok && num < n {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "max":
		n, err := strconv.ParseFloat(param, 64)
		if err != nil {
			return ""
		}
		if size, isStr := length(v); isStr {
			if float64(size) > n {
				return fmt.Sprintf("The %s field may not be greater than %s characters.", field, param)
			}
		} else if num, ok := numeric(v); ok && num > n {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "in":
		raw := fmt.Sprintf("%v", v.Interface())
		for _, item := range strings.Split(param, ",") {
			if raw == item {
				return ""
			}
		}
		return fmt.Sprintf("The selected %s is invalid.", field)
	}

	return ""
}

// splitRules splits the tag on commas, keeping rule parameters (which may
// themselves contain commas, as in required_if=a,b or in=a,b,c) attached to
// their rule.
func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")
	var rules []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// A bare fragment with no '=' that follows a parameterised rule is a
		// continuation of that rule's parameter list.
		if len(rules) > 0 && !strings.Contains(p, "=") && isParameterised(rules[len(rules)-1]) {
			rules[len(rules)-1] += "," + p
			continue
		}
		rules = append(rules, p)
	}
	return rules
}

func isParameterised(rule string) bool {
	key, _, ok := strings.Cut(rule, "=")
	if !ok {
		return false
	}
	return key == "in" || key == "required_if"
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

func siblingValue(parent reflect.Value, jsonName string) string {
	rt := parent.Type()
	for i := 0; i < rt.NumField(); i++ {
		if jsonFieldName(rt.Field(i)) == jsonName {
			return fmt.Sprintf("%v", parent.Field(i).Interface())
		}
	}
	return ""
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// length returns (len, true) for strings, (0, false) otherwise.
func length(v reflect.Value) (int, bool) {
	if v.Kind() == reflect.String {
		return len([]rune(v.String())), true
	}
	return 0, false
}

func numeric(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
