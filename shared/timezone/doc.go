// Package timezone provides timezone utilities for record metadata.
//
// Note: scheduling times (slot and booking windows) bypass this package.
// They are wall-clock values carried by shared/localtime and are
// never converted between zones. This package only serves audit metadata
// (created_at/modified_at) and operational timestamps.
//
// Usage:
//
//	now := timezone.Now()                    // Current time in app timezone
//	formatted := timezone.Format(t, layout)  // Format in app timezone
//	t, err := timezone.Parse(layout, value)  // Parse in app timezone
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Use standard IANA timezone database names.
package timezone
