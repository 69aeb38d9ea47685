// Package variant defines the output variants a projection can target.
package variant

import "fmt"

// Variant selects which conditional template branches are active and
// whether exercise markers resolve to their solution form. Exactly one
// variant is active per run.
type Variant int

const (
	// Code is the distributable participant code.
	Code Variant = iota
	// Solution is the instructor solution.
	Solution
	// Slide is the lecture slide excerpt.
	Slide
	// Selftest is the self-test build. Selftest implies Solution:
	// solution branches render and exercise markers resolve.
	Selftest
)

var names = [...]string{
	Code:     "code",
	Solution: "solution",
	Slide:    "slide",
	Selftest: "selftest",
}

// Parse resolves a variant name as given on the command line or in
// configuration.
func Parse(s string) (Variant, error) {
	for v, name := range names {
		if s == name {
			return Variant(v), nil
		}
	}
	return Code, fmt.Errorf("unknown output variant %q (want code, solution, slide or selftest)", s)
}

func (v Variant) String() string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Flags returns the boolean template context derived from the variant.
// Keys are the names visible inside template expressions.
func (v Variant) Flags() map[string]any {
	return map[string]any{
		"solution": v == Solution || v == Selftest,
		"selftest": v == Selftest,
		"slide":    v == Slide,
	}
}

// RevealsSolutions reports whether exercise markers resolve to their
// solution form under this variant.
func (v Variant) RevealsSolutions() bool {
	return v == Solution || v == Selftest
}
