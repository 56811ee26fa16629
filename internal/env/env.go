// Package env fills configuration structs from environment variables.
//
// Fields opt in with an env:"NAME" tag and may carry a default:"value" used
// when NAME is absent from the environment. A variable that is present but
// empty is taken literally. Supported kinds are string, bool, the signed
// integers and time.Duration. Struct fields are descended into, and any
// struct implementing Validator is checked once its own fields are filled.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

// Validator is implemented by config structs that check their own values.
type Validator interface {
	Validate() error
}

// ErrInvalidValue reports a variable whose value does not parse into its field.
type ErrInvalidValue struct {
	Field  string
	EnvVar string
	Value  string
	Err    error
}

func (e ErrInvalidValue) Error() string {
	return fmt.Sprintf("%s=%q cannot be loaded into %s: %v", e.EnvVar, e.Value, e.Field, e.Err)
}

func (e ErrInvalidValue) Unwrap() error {
	return e.Err
}

// ErrNotStructPointer is returned when Load gets anything but a non-nil *struct.
type ErrNotStructPointer struct {
	Type string
}

func (e ErrNotStructPointer) Error() string {
	return "env: Load needs a non-nil pointer to a struct, got " + e.Type
}

// ErrUnsupportedType is returned for a tagged field of a kind Load cannot parse.
type ErrUnsupportedType struct {
	Kind string
}

func (e ErrUnsupportedType) Error() string {
	return "env: cannot load fields of kind " + e.Kind
}

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// Load populates the struct v points to. Untagged and unexported fields are
// left alone, as are tagged fields with neither a variable nor a default.
func Load(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer{Type: fmt.Sprintf("%T", v)}
	}
	return fill(rv.Elem())
}

// fill loads every field of s, then validates s. Nested structs are
// validated before the struct that contains them.
func fill(s reflect.Value) error {
	typ := s.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		field := s.Field(i)

		if field.Kind() == reflect.Struct && field.Type() != timeType {
			if err := fill(field); err != nil {
				return err
			}
			continue
		}

		name := sf.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			if raw, ok = sf.Tag.Lookup("default"); !ok {
				continue
			}
		}
		if err := assign(field, raw); err != nil {
			return ErrInvalidValue{Field: sf.Name, EnvVar: name, Value: raw, Err: err}
		}
	}

	if v, ok := s.Addr().Interface().(Validator); ok {
		return v.Validate()
	}
	return nil
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	default:
		return ErrUnsupportedType{Kind: field.Kind().String()}
	}
	return nil
}
