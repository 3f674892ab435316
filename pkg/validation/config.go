package validation

import (
	"fmt"

	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
)

// ValidateTimezone returns a warning when the rotation timezone cannot be
// resolved. The caller falls back to UTC in that case.
func ValidateTimezone(name string) string {
	if _, err := datetime.LoadLocation(name); err != nil {
		return fmt.Sprintf("Rotation timezone %q is unknown, day keys will use %s", name, constants.DefaultTimezone)
	}
	return ""
}

// ValidateRecentDays returns a warning when the recent quotes window is
// outside 1..MaxRecentDays. Zero means "use the default" and is accepted.
func ValidateRecentDays(days int) string {
	if days == 0 {
		return ""
	}
	if days < 0 || days > constants.MaxRecentDays {
		return fmt.Sprintf("Recent quote window of %d days is outside 1..%d and will be clamped",
			days, constants.MaxRecentDays)
	}
	return ""
}
