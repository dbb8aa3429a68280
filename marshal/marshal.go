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

// Marshal/Unmarshal errors.
var (
	// ErrNotPointer indicates the target is not a pointer.
	ErrNotPointer = errors.New("target must be a pointer")
	// ErrNotStruct indicates the target is not a struct.
	ErrNotStruct = errors.New("target must be a struct")
	// ErrNilPointer indicates a nil pointer was provided.
	ErrNilPointer = errors.New("target pointer is nil")
	// ErrUnsupportedType indicates an unsupported field type.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// Marshaler builds x12.Segments from tagged Go structs. It is the
// counterpart to the field-by-field NewSegment/NewAtomic construction
// ack and generate use directly: a Marshaler is for callers who'd
// rather describe a segment's shape once, as a struct, than write out
// every element position by hand — typed access to the fixed envelope
// and acknowledgment segments (ISA, GS, ST, SE, GE, IEA, AK1, AK9,
// IK3, IK4, IK5), or to application-defined views of any other
// segment.
type Marshaler interface {
	// Marshal builds a Segment named id from v's tagged fields. v must
	// be a struct or a pointer to one.
	//
	// Example:
	//
	//	type AK1 struct {
	//	    FunctionalID  string `x12:"1"`
	//	    ControlNumber string `x12:"2"`
	//	}
	//	seg, err := marshaler.Marshal("AK1", AK1{FunctionalID: "HC", ControlNumber: "1"})
	Marshal(id string, v interface{}) (x12.Segment, error)
}

// marshaler is the concrete implementation of Marshaler.
type marshaler struct {
	config *marshalConfig
}

// NewMarshaler creates a new Marshaler with the given options.
func NewMarshaler(opts ...Option) Marshaler {
	cfg := defaultConfig()
	cfg.applyOptions(opts...)
	return &marshaler{config: cfg}
}

// Marshal builds a Segment named id from v's tagged fields.
func (m *marshaler) Marshal(id string, v interface{}) (x12.Segment, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return x12.Segment{}, ErrNilPointer
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return x12.Segment{}, ErrNotStruct
	}

	b := newElementBuilder()
	if err := m.marshalStruct(rv, b); err != nil {
		return x12.Segment{}, err
	}
	return x12.Segment{ID: strings.ToUpper(strings.TrimSpace(id)), Elements: b.build()}, nil
}

// marshalStruct walks rv's fields, writing each tagged field into b.
// A field with no tag at all but of struct kind is treated as an
// embedded group and recursed into, so a segment's fixed leading
// elements and a repeating tail can be composed from separate structs.
func (m *marshaler) marshalStruct(rv reflect.Value, b *elementBuilder) error {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		ft := rt.Field(i)

		tag := ft.Tag.Get(m.config.tagName)
		if tag == "" {
			if field.Kind() == reflect.Struct && ft.Type != reflect.TypeOf(time.Time{}) {
				if err := m.marshalStruct(field, b); err != nil {
					return err
				}
			}
			continue
		}

		if !field.CanInterface() {
			continue
		}

		info, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", ft.Name, err)
		}
		if info.ignore || !info.hasLocation() {
			continue
		}
		if info.shouldOmit(m.config.omitEmpty) && isZeroValue(field) {
			continue
		}

		value, err := m.fieldToString(field, info)
		if err != nil {
			return fmt.Errorf("field %s: %w", ft.Name, err)
		}
		if info.component > 0 {
			b.setComponent(info.position, info.component, value)
		} else {
			b.setAtomic(info.position, value)
		}
	}
	return nil
}

// fieldToString renders field's scalar value as the string an X12
// element holds, following the same type-by-type conversion the
// unmarshal direction reverses.
func (m *marshaler) fieldToString(field reflect.Value, info *tagInfo) (string, error) {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return "", nil
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		return field.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(field.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		if field.Bool() {
			return "Y", nil
		}
		return "N", nil
	case reflect.Struct:
		if field.Type() == reflect.TypeOf(time.Time{}) {
			t := field.Interface().(time.Time)
			if t.IsZero() {
				return "", nil
			}
			return t.Format(info.getTimeFormat(m.config.timeFormat)), nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type().String())
	}
}

// isZeroValue reports whether v holds its type's zero value, treating
// a zero time.Time like any other zero struct.
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr:
		return v.IsNil()
	case reflect.Struct:
		if v.Type() == reflect.TypeOf(time.Time{}) {
			return v.Interface().(time.Time).IsZero()
		}
		return v.IsZero()
	default:
		return v.IsZero()
	}
}

// elementBuilder accumulates a segment's elements out of order (tagged
// struct fields need not appear in position order) and renders them as
// a dense, 1-indexed []x12.Element on build, filling any gap below the
// highest position written with an empty atomic element.
type elementBuilder struct {
	atomics    map[int]string
	composites map[int]map[int]string
	maxPos     int
}

func newElementBuilder() *elementBuilder {
	return &elementBuilder{atomics: map[int]string{}, composites: map[int]map[int]string{}}
}

func (b *elementBuilder) setAtomic(pos int, value string) {
	b.atomics[pos] = value
	if pos > b.maxPos {
		b.maxPos = pos
	}
}

func (b *elementBuilder) setComponent(pos, comp int, value string) {
	m, ok := b.composites[pos]
	if !ok {
		m = map[int]string{}
		b.composites[pos] = m
	}
	m[comp] = value
	if pos > b.maxPos {
		b.maxPos = pos
	}
}

func (b *elementBuilder) build() []x12.Element {
	elements := make([]x12.Element, b.maxPos)
	for i := range elements {
		elements[i] = x12.NewAtomic(i+1, "")
	}
	for pos, value := range b.atomics {
		elements[pos-1] = x12.NewAtomic(pos, value)
	}
	for pos, comps := range b.composites {
		maxComp := 0
		for c := range comps {
			if c > maxComp {
				maxComp = c
			}
		}
		parts := make([]string, maxComp)
		for c, v := range comps {
			parts[c-1] = v
		}
		elements[pos-1] = x12.NewComposite(pos, parts...)
	}
	return elements
}
