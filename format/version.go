package format

import (
	"github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// CompareVersions compares the semantic versions and returns -1, 0 or 1.
func CompareVersions(a, b string) (int, error) {
	va, err := version.NewVersion(a)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid version:%s", a)
	}
	vb, err := version.NewVersion(b)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid version:%s", b)
	}

	return va.Compare(vb), nil
}

// SatisfiesVersion reports whether the version matches the constraint, e.g. ">= 0.46".
func SatisfiesVersion(v, constraint string) (bool, error) {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version:%s", v)
	}
	constraints, err := version.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version constraint:%s", constraint)
	}

	return constraints.Check(parsed), nil
}
