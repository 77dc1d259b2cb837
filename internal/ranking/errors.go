package ranking

import (
	"fmt"
	"strings"
)

// ConfigError reports an invalid weight configuration. No rows are processed
// when one is returned.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid weight configuration: %s", e.Reason)
}

// SchemaError reports every required column absent from a dataset, not just
// the first one found.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// DivisionError reports a row whose song count is zero, which the upstream
// aggregation guarantees cannot happen. It indicates a contract violation
// rather than a recoverable condition.
type DivisionError struct {
	Artist string
	Year   int
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("row for %q (%d) has zero songs, explicit ratio is undefined", e.Artist, e.Year)
}
