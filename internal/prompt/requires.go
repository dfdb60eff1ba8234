package prompt

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires verifies that the running build satisfies a template's
// `requires` semver constraint. An empty constraint always passes, as do
// development builds ("dev" or empty version) which carry no comparable number.
func CheckRequires(constraint, buildVersion string) error {
	if constraint == "" {
		return nil
	}
	if buildVersion == "" || buildVersion == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(buildVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing build version %q: %w", buildVersion, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("template requires swarmgen %s, running %s", constraint, buildVersion)
	}
	return nil
}
