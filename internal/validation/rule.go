// Package validation implements the format compliance engine.
//
// A FormatSpec holds one Rule per checked dimension (container, video codec,
// audio codec, pixel format). Each Rule is an allow- or reject-list evaluated
// independently against the observed value; there is no cross-dimension logic.
package validation

import (
	"fmt"
	"slices"
	"strings"
)

// RuleKind discriminates between allow- and reject-list rules.
type RuleKind int

const (
	// RuleAllow accepts a value iff it is a member of the rule's set.
	RuleAllow RuleKind = iota
	// RuleReject accepts a value iff it is NOT a member of the rule's set.
	RuleReject
)

// Rule decides whether an observed value is acceptable for one dimension.
//
// An empty allow set rejects every value; an empty reject set accepts every
// value, which is the way to disable checking on a dimension.
type Rule struct {
	Kind   RuleKind
	Values []string
}

// Allow builds an allow-list rule.
func Allow(values ...string) Rule {
	return Rule{Kind: RuleAllow, Values: values}
}

// Reject builds a reject-list rule.
func Reject(values ...string) Rule {
	return Rule{Kind: RuleReject, Values: values}
}

// Compliant reports whether value satisfies the rule.
func (r Rule) Compliant(value string) bool {
	member := slices.Contains(r.Values, value)
	if r.Kind == RuleAllow {
		return member
	}
	return !member
}

// String renders the rule for reporting, e.g. "allow [h264 h265]".
func (r Rule) String() string {
	kind := "allow"
	if r.Kind == RuleReject {
		kind = "reject"
	}
	return fmt.Sprintf("%s [%s]", kind, strings.Join(r.Values, " "))
}
