package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionRange is a Spring-style version range. "1.2.3" means 1.2.3 or later;
// "[1.2.3,2.0.0)" and "(1.2.3,2.0.0]" bound both ends.
type VersionRange struct {
	Lower          *semver.Version
	LowerInclusive bool
	Upper          *semver.Version // nil when unbounded
	UpperInclusive bool
}

// qualifierRe matches dotted Spring qualifiers such as 3.4.0.M1 or 3.4.0.RC2.
var qualifierRe = regexp.MustCompile(`^(\d+\.\d+\.\d+)\.([A-Za-z][A-Za-z0-9-]*)$`)

// ParseVersion parses a Spring Boot version, normalising ".RELEASE",
// ".BUILD-SNAPSHOT" and dotted milestone qualifiers into semver form.
func ParseVersion(s string) (*semver.Version, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, ".RELEASE")
	v = strings.Replace(v, ".BUILD-SNAPSHOT", "-SNAPSHOT", 1)
	if m := qualifierRe.FindStringSubmatch(v); m != nil {
		v = m[1] + "-" + m[2]
	}
	return semver.NewVersion(v)
}

// ParseVersionRange parses a Spring version range expression.
func ParseVersionRange(expr string) (*VersionRange, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty version range")
	}

	if expr[0] != '[' && expr[0] != '(' {
		lower, err := ParseVersion(expr)
		if err != nil {
			return nil, fmt.Errorf("parsing version range %q: %w", expr, err)
		}
		return &VersionRange{Lower: lower, LowerInclusive: true}, nil
	}

	last := expr[len(expr)-1]
	if last != ']' && last != ')' {
		return nil, fmt.Errorf("parsing version range %q: missing closing bracket", expr)
	}
	bounds := strings.Split(expr[1:len(expr)-1], ",")
	if len(bounds) != 2 {
		return nil, fmt.Errorf("parsing version range %q: expected two bounds", expr)
	}

	lower, err := ParseVersion(bounds[0])
	if err != nil {
		return nil, fmt.Errorf("parsing lower bound of %q: %w", expr, err)
	}
	upper, err := ParseVersion(bounds[1])
	if err != nil {
		return nil, fmt.Errorf("parsing upper bound of %q: %w", expr, err)
	}

	return &VersionRange{
		Lower:          lower,
		LowerInclusive: expr[0] == '[',
		Upper:          upper,
		UpperInclusive: last == ']',
	}, nil
}

// Contains reports whether v lies inside the range.
func (r *VersionRange) Contains(v *semver.Version) bool {
	if c := v.Compare(r.Lower); c < 0 || (c == 0 && !r.LowerInclusive) {
		return false
	}
	if r.Upper == nil {
		return true
	}
	c := v.Compare(r.Upper)
	return c < 0 || (c == 0 && r.UpperInclusive)
}

// String renders the range in Spring notation.
func (r *VersionRange) String() string {
	if r.Upper == nil {
		return ">=" + r.Lower.Original()
	}
	open, closing := "(", ")"
	if r.LowerInclusive {
		open = "["
	}
	if r.UpperInclusive {
		closing = "]"
	}
	return open + r.Lower.Original() + "," + r.Upper.Original() + closing
}

// InRange reports whether version satisfies expr. An empty or unparseable
// range, or an unparseable version, counts as a match: schema drift must not
// hide choices.
func InRange(expr, version string) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	r, err := ParseVersionRange(expr)
	if err != nil {
		return true
	}
	v, err := ParseVersion(version)
	if err != nil {
		return true
	}
	return r.Contains(v)
}
