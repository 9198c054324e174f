// Package vector parses CVSS v3.1 vector strings into their base metric letters.
package vector

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Prefix is the version tag every supported vector starts with.
const Prefix = "CVSS:3.1"

var (
	// ErrMalformedVector is returned when input does not match the CVSS v3.1
	// base metric grammar.
	ErrMalformedVector = errors.New("malformed CVSS v3.1 vector")

	// ErrMissingScope is returned when no valid S: field is present.
	// A vector without a scope is also malformed, so it wraps ErrMalformedVector.
	ErrMissingScope = fmt.Errorf("%w: scope (S:U or S:C) not provided", ErrMalformedVector)
)

// Metric names a base metric dimension.
type Metric string

const (
	AttackVector       Metric = "AV"
	AttackComplexity   Metric = "AC"
	PrivilegesRequired Metric = "PR"
	UserInteraction    Metric = "UI"
	Scope              Metric = "S"
	Confidentiality    Metric = "C"
	Integrity          Metric = "I"
	Availability       Metric = "A"
)

// BaseMetrics lists the base metrics in vector order.
var BaseMetrics = []Metric{
	AttackVector,
	AttackComplexity,
	PrivilegesRequired,
	UserInteraction,
	Scope,
	Confidentiality,
	Integrity,
	Availability,
}

// Name returns the human-readable metric name.
func (m Metric) Name() string {
	switch m {
	case AttackVector:
		return "Attack Vector"
	case AttackComplexity:
		return "Attack Complexity"
	case PrivilegesRequired:
		return "Privileges Required"
	case UserInteraction:
		return "User Interaction"
	case Scope:
		return "Scope"
	case Confidentiality:
		return "Confidentiality"
	case Integrity:
		return "Integrity"
	case Availability:
		return "Availability"
	default:
		return string(m)
	}
}

// Field is a single KEY:VALUE pair that follows the base metrics.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Vector holds the base metric letters of a parsed vector.
// Immutable once parsed.
type Vector struct {
	AttackVector       string `json:"AV"`
	AttackComplexity   string `json:"AC"`
	PrivilegesRequired string `json:"PR"`
	UserInteraction    string `json:"UI"`
	Scope              string `json:"S"`
	Confidentiality    string `json:"C"`
	Integrity          string `json:"I"`
	Availability       string `json:"A"`

	// Extra holds temporal/environmental fields that were accepted but are
	// not part of the base score.
	Extra []Field `json:"extra,omitempty"`
}

var (
	basePattern = regexp.MustCompile(
		`^CVSS:3\.1/AV:([NALP])/AC:([LH])/PR:([NLH])/UI:([NR])/S:([UC])/C:([NLH])/I:([NLH])/A:([NLH])((?:/[A-Za-z]+:[A-Za-z]+)*)$`)
	extraPattern = regexp.MustCompile(`/([A-Za-z]+):([A-Za-z]+)`)
	scopePattern = regexp.MustCompile(`(?:^|/)S:([UC])(?:/|$)`)
)

// Parse parses a CVSS v3.1 vector. Trailing /KEY:VALUE groups after the
// base metrics are kept in Vector.Extra and otherwise ignored.
func Parse(s string) (*Vector, error) {
	return parse(s, false)
}

// ParseStrict is like Parse but rejects anything after the base metrics.
func ParseStrict(s string) (*Vector, error) {
	return parse(s, true)
}

func parse(s string, strict bool) (*Vector, error) {
	m := basePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedVector, s)
	}

	v := &Vector{
		AttackVector:       m[1],
		AttackComplexity:   m[2],
		PrivilegesRequired: m[3],
		UserInteraction:    m[4],
		Scope:              m[5],
		Confidentiality:    m[6],
		Integrity:          m[7],
		Availability:       m[8],
	}

	if trailing := m[9]; trailing != "" {
		if strict {
			return nil, fmt.Errorf("%w: unexpected trailing fields %q", ErrMalformedVector, trailing)
		}
		for _, f := range extraPattern.FindAllStringSubmatch(trailing, -1) {
			v.Extra = append(v.Extra, Field{Key: f[1], Value: f[2]})
		}
	}

	return v, nil
}

// ParseScope locates the S: field anywhere in s and reports whether the
// scope is Changed.
func ParseScope(s string) (bool, error) {
	m := scopePattern.FindStringSubmatch(s)
	if m == nil {
		return false, ErrMissingScope
	}
	return m[1] == "C", nil
}

// ScopeChanged reports whether the vector's scope is Changed.
func (v *Vector) ScopeChanged() bool {
	return v.Scope == "C"
}

// Get returns the letter for a base metric, or "" for an unknown metric.
func (v *Vector) Get(m Metric) string {
	switch m {
	case AttackVector:
		return v.AttackVector
	case AttackComplexity:
		return v.AttackComplexity
	case PrivilegesRequired:
		return v.PrivilegesRequired
	case UserInteraction:
		return v.UserInteraction
	case Scope:
		return v.Scope
	case Confidentiality:
		return v.Confidentiality
	case Integrity:
		return v.Integrity
	case Availability:
		return v.Availability
	default:
		return ""
	}
}

// String renders the canonical base vector, without extra fields.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(Prefix)
	for _, m := range BaseMetrics {
		fmt.Fprintf(&b, "/%s:%s", m, v.Get(m))
	}
	return b.String()
}
