package marshal

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/gox12/x12"
)

// Unmarshaler populates Go structs from x12.Segments.
type Unmarshaler interface {
	// Unmarshal populates the struct pointed to by v with data read
	// from seg. Struct fields are tagged with x12 tags naming an
	// element position and, for composite elements, a component
	// position.
	//
	// Example:
	//
	//	type AK1 struct {
	//	    FunctionalID  string `x12:"1"`
	//	    ControlNumber string `x12:"2"`
	//	}
	//
	//	var ak1 AK1
	//	err := unmarshaler.Unmarshal(seg, &ak1)
	Unmarshal(seg x12.Segment, v interface{}) error
}

// unmarshaler is the concrete implementation of Unmarshaler.
type unmarshaler struct {
	config *marshalConfig
}

// NewUnmarshaler creates a new Unmarshaler with the given options.
func NewUnmarshaler(opts ...Option) Unmarshaler {
	cfg := defaultConfig()
	cfg.applyOptions(opts...)
	return &unmarshaler{config: cfg}
}

// Unmarshal populates the struct pointed to by v with data read from seg.
func (u *unmarshaler) Unmarshal(seg x12.Segment, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if rv.IsNil() {
		return ErrNilPointer
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	return u.unmarshalStruct(seg, rv)
}

// unmarshalStruct unmarshals segment data into a struct value.
func (u *unmarshaler) unmarshalStruct(seg x12.Segment, rv reflect.Value) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		tag := fieldType.Tag.Get(u.config.tagName)
		if tag == "" {
			if field.Kind() == reflect.Struct && fieldType.Type != reflect.TypeOf(time.Time{}) {
				if err := u.unmarshalStruct(seg, field); err != nil {
					return err
				}
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		tagInfo, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}

		if tagInfo.ignore || !tagInfo.hasLocation() {
			continue
		}

		value, present := elementValue(seg, tagInfo)
		if !present || value == "" {
			continue
		}

		if err := u.setFieldValue(field, value, tagInfo); err != nil {
			return fmt.Errorf("field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

// elementValue reads the scalar value a tag addresses out of seg: the
// element's atomic value, or one component of a composite element.
// Reading a position seg doesn't carry, or a component a non-composite
// element doesn't have, is reported as absent rather than an error —
// X12 elements trailing the last populated one are routinely elided.
func elementValue(seg x12.Segment, info *tagInfo) (string, bool) {
	el, present := seg.Element1(info.position)
	if !present {
		return "", false
	}
	if info.component > 0 {
		return el.Component(info.component)
	}
	return el.String(), true
}

// setFieldValue sets the field value from a string, performing type conversion.
func (u *unmarshaler) setFieldValue(field reflect.Value, value string, tagInfo *tagInfo) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return u.setIntValue(field, value)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return u.setUintValue(field, value)

	case reflect.Float32, reflect.Float64:
		return u.setFloatValue(field, value)

	case reflect.Bool:
		return u.setBoolValue(field, value)

	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			return u.setTimeValue(field, value, tagInfo)
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}

// setIntValue sets an integer field value.
func (u *unmarshaler) setIntValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as int: %w", value, err)
	}
	field.SetInt(i)
	return nil
}

// setUintValue sets an unsigned integer field value.
func (u *unmarshaler) setUintValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	i, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as uint: %w", value, err)
	}
	field.SetUint(i)
	return nil
}

// setFloatValue sets a float field value.
func (u *unmarshaler) setFloatValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("cannot parse %q as float: %w", value, err)
	}
	field.SetFloat(f)
	return nil
}

// setBoolValue sets a boolean field value from an X12 yes/no indicator.
// Accepts "Y"/"N" (the common TR3 convention), "1"/"0", and
// "true"/"false", all case-insensitive.
func (u *unmarshaler) setBoolValue(field reflect.Value, value string) error {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return nil
	}
	switch value {
	case "true", "1", "y", "yes":
		field.SetBool(true)
	case "false", "0", "n", "no":
		field.SetBool(false)
	default:
		return errors.New("cannot parse " + strconv.Quote(value) + " as bool")
	}
	return nil
}

// setTimeValue sets a time.Time field value, trying the tag's (or
// config's) configured layout first and falling back to the X12 date
// and time layouts actually seen across the envelope and transaction
// date elements this package handles.
func (u *unmarshaler) setTimeValue(field reflect.Value, value string, tagInfo *tagInfo) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	format := tagInfo.getTimeFormat(u.config.timeFormat)
	t, err := time.ParseInLocation(format, value, u.config.timeLocation)
	if err != nil {
		formats := []string{
			"20060102", // CCYYMMDD date (ISA09, GS04, DTM)
			"060102",   // YYMMDD date (legacy ISA09)
			"1504",     // HHMM time (ISA10, GS05)
			"150405",   // HHMMSS time
		}
		for _, f := range formats {
			if len(value) != len(f) {
				continue
			}
			if t, err = time.ParseInLocation(f, value, u.config.timeLocation); err == nil {
				break
			}
		}
		if err != nil {
			return fmt.Errorf("cannot parse %q as time with format %q: %w", value, format, err)
		}
	}

	field.Set(reflect.ValueOf(t))
	return nil
}
