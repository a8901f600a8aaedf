/*package version controls the version*/
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SourceVersion is the version string representing the semantic version number
// of the source code.
const SourceVersion = "0.1.0"

// Parse parses a semantic version number string and returns an error if
// the string is invalid. Pre-release and build suffixes are accepted but not
// returned.
func Parse(s string) (major, minor, patch int, err error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return -1, -1, -1, fmt.Errorf("version string '%s' does not take "+
			"the form MAJOR.MINOR.PATCH: %w", s, err)
	}
	return int(v.Major()), int(v.Minor()), int(v.Patch()), nil
}

// Later returns true if s1 represents a later version of the source than
// s2. An error is returned if either is invalid.
func Later(s1, s2 string) (bool, error) {
	v1, err := semver.StrictNewVersion(s1)
	if err != nil { return false, err }
	v2, err := semver.StrictNewVersion(s2)
	if err != nil { return false, err }
	return v1.GreaterThan(v2), nil
}

// Compatible returns true if a file written for version s can be read by this
// source, i.e. if SourceVersion satisfies the caret range ^s.
func Compatible(s string) (bool, error) {
	if _, err := semver.StrictNewVersion(s); err != nil { return false, err }
	c, err := semver.NewConstraint("^" + s)
	if err != nil { return false, err }
	return c.Check(semver.MustParse(SourceVersion)), nil
}
