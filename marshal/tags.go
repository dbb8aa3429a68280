package marshal

import (
	"errors"
	"strconv"
	"strings"
)

// Tag parsing errors.
var (
	// ErrEmptyTag indicates an empty tag string was provided.
	ErrEmptyTag = errors.New("empty tag")
	// ErrInvalidTagFormat indicates the tag format is invalid.
	ErrInvalidTagFormat = errors.New("invalid tag format")
)

// tagInfo is one struct field's parsed tag: which element position it
// binds to, an optional component position within a composite element,
// and behavior modifiers carried as comma-separated options.
type tagInfo struct {
	position   int // 1-based element position; 0 means unset
	component  int // 1-based component position; 0 means the element is atomic
	omitEmpty  bool
	timeFormat string
	ignore     bool
}

// parseTag parses a struct tag into tagInfo.
// Tag format: "position[.component][,option[,option...]]"
//
// Supported options:
//   - omitempty: skip field if zero value when marshaling
//   - format=<layout>: custom time format for time.Time fields
//   - -: ignore this field
//
// Examples:
//
//	`x12:"3"`                    - element 3
//	`x12:"5.2"`                  - component 2 of composite element 5
//	`x12:"3,omitempty"`          - with omitempty
//	`x12:"9,format=20060102"`    - with custom time format
//	`x12:"5.2,omitempty,format=20060102"` - multiple options
//	`x12:"-"`                    - ignore field
func parseTag(tag string) (*tagInfo, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, ErrEmptyTag
	}

	if tag == "-" {
		return &tagInfo{ignore: true}, nil
	}

	info := &tagInfo{}

	parts := strings.Split(tag, ",")

	loc := strings.TrimSpace(parts[0])
	if loc == "" {
		return nil, ErrInvalidTagFormat
	}
	segs := strings.SplitN(loc, ".", 2)
	pos, err := strconv.Atoi(segs[0])
	if err != nil || pos < 1 {
		return nil, ErrInvalidTagFormat
	}
	info.position = pos
	if len(segs) == 2 {
		comp, err := strconv.Atoi(segs[1])
		if err != nil || comp < 1 {
			return nil, ErrInvalidTagFormat
		}
		info.component = comp
	}

	for i := 1; i < len(parts); i++ {
		opt := strings.TrimSpace(parts[i])
		if opt == "" {
			continue
		}
		switch {
		case opt == "omitempty":
			info.omitEmpty = true
		case strings.HasPrefix(opt, "format="):
			info.timeFormat = strings.TrimPrefix(opt, "format=")
		default:
			// Unknown options are ignored for forward compatibility
		}
	}

	return info, nil
}

// hasLocation returns true if the tag specifies an element position.
func (t *tagInfo) hasLocation() bool {
	return t != nil && t.position > 0 && !t.ignore
}

// shouldOmit returns true if the field should be omitted when marshaling.
func (t *tagInfo) shouldOmit(globalOmitEmpty bool) bool {
	if t == nil {
		return false
	}
	return t.omitEmpty || globalOmitEmpty
}

// getTimeFormat returns the time format to use, with the given default.
func (t *tagInfo) getTimeFormat(defaultFormat string) string {
	if t != nil && t.timeFormat != "" {
		return t.timeFormat
	}
	return defaultFormat
}
