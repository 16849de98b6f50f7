package paths

import (
	"fmt"
	"regexp"
)

// DefaultInstance is used when neither a flag nor the config names one.
const DefaultInstance = "main"

var nameRegexp = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ValidateName checks that name is usable as an instance directory.
func ValidateName(name string) error {
	if !nameRegexp.MatchString(name) {
		return fmt.Errorf("invalid instance name %q: must match ^[a-z0-9_-]{1,64}$", name)
	}
	return nil
}

// Resolve picks the instance name: the --instance flag, then the
// configured default, then "main".
func Resolve(flagOverride, configured string) string {
	if flagOverride != "" {
		return flagOverride
	}
	if configured != "" {
		return configured
	}
	return DefaultInstance
}
