// Package types defines the data structures shared across dirsample.
package types

type (
	// FilterConfig contains the name filter settings for a run.
	// An empty Pattern matches every entry.
	FilterConfig struct {
		Pattern         string `yaml:"pattern,omitempty"`
		CaseInsensitive bool   `yaml:"ignoreCase,omitempty"`
	}
)

// HasPattern reports whether a substring pattern is configured.
func (c FilterConfig) HasPattern() bool {
	return c.Pattern != ""
}
