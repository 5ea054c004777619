package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires enforces a project's minimum tool version. An empty
// constraint always passes, as does a build version that is not semver
// (local "dev" builds).
func CheckRequires(requires, version string) error {
	if requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("invalid requires constraint %q: %w", requires, err)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return nil
	}

	if ok, errs := constraint.Validate(v); !ok {
		msg := fmt.Sprintf("version %s does not satisfy requires %q", v, requires)
		if len(errs) > 0 {
			msg += ": " + errs[0].Error()
		}
		return errors.New(msg)
	}
	return nil
}
