package validate

import "regexp"

// RuleBuilder provides a fluent interface for composing a Rule out of
// the primitive checks below, mirroring the teacher's At(location)
// chain but binding to an element name rather than a full HL7 path —
// the caller supplies the actual x12.Location when the built Rule is
// applied to a resolved value during the validation walk.
type RuleBuilder interface {
	Required() RuleBuilder
	Pattern(pattern string) RuleBuilder
	Length(minLen, maxLen int) RuleBuilder
	OneOf(values ...string) RuleBuilder
	Custom(fn func(value string) error) RuleBuilder
	Build() Rule
}

type ruleBuilder struct {
	name  string
	rules []Rule
}

// At starts a RuleBuilder for an element identified by name, used only
// for Finding messages (e.g. "Billing Provider NPI").
func At(name string) RuleBuilder {
	return &ruleBuilder{name: name}
}

func (b *ruleBuilder) Required() RuleBuilder {
	b.rules = append(b.rules, &requiredRule{name: b.name})
	return b
}

func (b *ruleBuilder) Pattern(pattern string) RuleBuilder {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		b.rules = append(b.rules, &invalidPatternRule{name: b.name, pattern: pattern, err: err})
		return b
	}
	b.rules = append(b.rules, &patternRule{name: b.name, pattern: compiled})
	return b
}

func (b *ruleBuilder) Length(minLen, maxLen int) RuleBuilder {
	b.rules = append(b.rules, &lengthRule{name: b.name, min: minLen, max: maxLen})
	return b
}

func (b *ruleBuilder) OneOf(values ...string) RuleBuilder {
	b.rules = append(b.rules, &oneOfRule{name: b.name, allowed: values})
	return b
}

func (b *ruleBuilder) Custom(fn func(value string) error) RuleBuilder {
	b.rules = append(b.rules, &customRule{name: b.name, fn: fn})
	return b
}

// Build assembles the final Rule. A builder with no rules added yields
// a Rule that always passes; one rule is returned directly; more than
// one is wrapped in a compositeRule.
func (b *ruleBuilder) Build() Rule {
	switch len(b.rules) {
	case 0:
		return &compositeRule{name: b.name}
	case 1:
		return b.rules[0]
	default:
		return &compositeRule{name: b.name, rules: b.rules}
	}
}
