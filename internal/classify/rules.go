// Package classify assigns browsing visits to activity categories by
// keyword matching against the URL and page title.
package classify

import "strings"

// Rule maps a category to the keywords that select it. A keyword matches
// when it appears anywhere in the lowercased URL or title.
type Rule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Other is the fallback category when no rule matches.
const Other = "Other"

// Ruleset is an ordered list of rules. Order is significant: the first
// matching rule wins, so narrower rules (mail.google.com) must precede
// broader ones (google.com).
type Ruleset struct {
	rules []Rule
}

// NewRuleset builds a Ruleset from an ordered list of rules.
func NewRuleset(rules []Rule) *Ruleset {
	return &Ruleset{rules: rules}
}

// Default returns a Ruleset with the curated default rules.
func Default() *Ruleset {
	return NewRuleset(DefaultRules())
}

// Categorize returns the category for a visit, or Other.
func (rs *Ruleset) Categorize(url, title string) string {
	urlLower := strings.ToLower(url)
	titleLower := strings.ToLower(title)

	for _, r := range rs.rules {
		for _, kw := range r.Keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(urlLower, kw) || strings.Contains(titleLower, kw) {
				return r.Category
			}
		}
	}
	return Other
}

// Rules returns a copy of the ordered rules.
func (rs *Ruleset) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Categories returns the rule categories in order, with Other appended.
func (rs *Ruleset) Categories() []string {
	out := make([]string, 0, len(rs.rules)+1)
	for _, r := range rs.rules {
		out = append(out, r.Category)
	}
	return append(out, Other)
}
