package validate

import (
	"fmt"

	"github.com/dshills/gox12/schema"
)

// ruleForElement builds a Rule from a declarative schema.ElementRule,
// wiring the RuleBuilder fluent chain; a codeset check a schema
// profile attaches via ElementRule.Check (e.g. the 837 billing
// provider NPI Luhn check) becomes a Custom rule.
func ruleForElement(er schema.ElementRule) Rule {
	b := At(er.Name)
	if er.Name == "" {
		b = At(fmt.Sprintf("element %d", er.Position))
	}
	if er.Required {
		b = b.Required()
	}
	if er.MinLength > 0 || er.MaxLength > 0 {
		b = b.Length(er.MinLength, er.MaxLength)
	}
	if er.Pattern != "" {
		b = b.Pattern(er.Pattern)
	}
	if len(er.CodeSet) > 0 {
		b = b.OneOf(er.CodeSet...)
	}
	if er.Check != nil {
		check := er.Check
		name := er.Name
		b = b.Custom(func(value string) error {
			if !check(value) {
				return fmt.Errorf("%s failed validation check", name)
			}
			return nil
		})
	}
	return b.Build()
}
