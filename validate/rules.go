package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/gox12/x12"
)

// Rule checks one resolved element value and reports any Findings,
// without a Location attached — the caller fills in Location once it
// knows which occurrence produced the value.
type Rule interface {
	// Validate checks value. present reports whether the element was
	// found at all (vs. resolving to an empty string because it was
	// absent), matching the teacher's msg.Get-error-vs-empty-value
	// distinction.
	Validate(value string, present bool) []x12.Finding
	// Name returns a human-readable label for the element this rule
	// was built for, used in Finding messages.
	Name() string
}

// requiredRule checks that an element is present and non-empty.
type requiredRule struct{ name string }

func (r *requiredRule) Name() string { return r.name }

func (r *requiredRule) Validate(value string, present bool) []x12.Finding {
	if !present || strings.TrimSpace(value) == "" {
		return []x12.Finding{{
			Severity: x12.SeverityError,
			Code:     x12.CodeMissingElement,
			Message:  fmt.Sprintf("%s is required but absent or empty", r.name),
		}}
	}
	return nil
}

// patternRule checks that a present, non-empty element matches a
// regular expression.
type patternRule struct {
	name    string
	pattern *regexp.Regexp
}

func (r *patternRule) Name() string { return r.name }

func (r *patternRule) Validate(value string, present bool) []x12.Finding {
	if !present || value == "" {
		return nil
	}
	if !r.pattern.MatchString(value) {
		return []x12.Finding{{
			Severity: x12.SeverityError,
			Code:     x12.CodeInvalidElement,
			Message:  fmt.Sprintf("%s value %q does not match pattern %q", r.name, value, r.pattern.String()),
		}}
	}
	return nil
}

// invalidPatternRule always fails because its pattern failed to compile.
type invalidPatternRule struct {
	name    string
	pattern string
	err     error
}

func (r *invalidPatternRule) Name() string { return r.name }

func (r *invalidPatternRule) Validate(string, bool) []x12.Finding {
	return []x12.Finding{{
		Severity: x12.SeverityError,
		Code:     x12.CodeInvalidElement,
		Message:  fmt.Sprintf("%s: invalid pattern %q: %v", r.name, r.pattern, r.err),
	}}
}

// lengthRule checks a present element's length falls within bounds.
// A zero bound means that side is unconstrained.
type lengthRule struct {
	name     string
	min, max int
}

func (r *lengthRule) Name() string { return r.name }

func (r *lengthRule) Validate(value string, present bool) []x12.Finding {
	if !present {
		return nil
	}
	n := len(value)
	if r.min > 0 && n < r.min {
		return []x12.Finding{{
			Severity: x12.SeverityError,
			Code:     x12.CodeInvalidElement,
			Message:  fmt.Sprintf("%s length %d is below minimum %d", r.name, n, r.min),
		}}
	}
	if r.max > 0 && n > r.max {
		return []x12.Finding{{
			Severity: x12.SeverityError,
			Code:     x12.CodeInvalidElement,
			Message:  fmt.Sprintf("%s length %d exceeds maximum %d", r.name, n, r.max),
		}}
	}
	return nil
}

// oneOfRule checks a present, non-empty element is a member of a
// closed code set.
type oneOfRule struct {
	name    string
	allowed []string
}

func (r *oneOfRule) Name() string { return r.name }

func (r *oneOfRule) Validate(value string, present bool) []x12.Finding {
	if !present || value == "" {
		return nil
	}
	for _, a := range r.allowed {
		if value == a {
			return nil
		}
	}
	return []x12.Finding{{
		Severity: x12.SeverityError,
		Code:     x12.CodeCodeSet,
		Message:  fmt.Sprintf("%s value %q is not one of [%s]", r.name, value, strings.Join(r.allowed, ", ")),
	}}
}

// customRule delegates to a caller-supplied check function, the
// generalization point schema.ElementRule.Check hangs off of (NPI
// Luhn, ICD-10 shape, CPT/HCPCS shape, calendar date/time).
type customRule struct {
	name string
	fn   func(string) error
}

func (r *customRule) Name() string { return r.name }

func (r *customRule) Validate(value string, present bool) []x12.Finding {
	if !present || value == "" {
		return nil
	}
	if err := r.fn(value); err != nil {
		return []x12.Finding{{
			Severity: x12.SeverityError,
			Code:     x12.CodeInvalidElement,
			Message:  fmt.Sprintf("%s: %v", r.name, err),
		}}
	}
	return nil
}

// compositeRule runs every contained rule and collects all Findings.
type compositeRule struct {
	name  string
	rules []Rule
}

func (r *compositeRule) Name() string { return r.name }

func (r *compositeRule) Validate(value string, present bool) []x12.Finding {
	var out []x12.Finding
	for _, rule := range r.rules {
		out = append(out, rule.Validate(value, present)...)
	}
	return out
}
