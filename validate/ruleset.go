package validate

// RuleSet is a reusable, composable collection of Rules, the same
// shape the teacher's MSHRules/PIDRules/ADTRules combinators used,
// generalized here for the handful of cross-cutting element rules
// (built from schema.ElementRule, see element.go) that are worth
// naming and reusing across transaction profiles.
type RuleSet interface {
	Rules() []Rule
	Add(rules ...Rule) RuleSet
	Merge(other RuleSet) RuleSet
}

type ruleSet struct {
	rules []Rule
}

// NewRuleSet creates a RuleSet from the given rules.
func NewRuleSet(rules ...Rule) RuleSet {
	rs := &ruleSet{rules: make([]Rule, 0, len(rules))}
	rs.rules = append(rs.rules, rules...)
	return rs
}

func (rs *ruleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

func (rs *ruleSet) Add(rules ...Rule) RuleSet {
	rs.rules = append(rs.rules, rules...)
	return rs
}

func (rs *ruleSet) Merge(other RuleSet) RuleSet {
	if other == nil {
		return NewRuleSet(rs.rules...)
	}
	combined := make([]Rule, 0, len(rs.rules)+len(other.Rules()))
	combined = append(combined, rs.rules...)
	combined = append(combined, other.Rules()...)
	return NewRuleSet(combined...)
}
