package types

type (
	// Sample is the entry picked from one directory.
	Sample struct {
		Dir   string `yaml:"dir"`   // directory argument, as given
		Entry string `yaml:"entry"` // selected entry name
		Index int    `yaml:"index"` // position in the sorted listing
		Total int    `yaml:"total"` // size of the sorted listing
	}
)

// Path returns the printed form "<dir>/<entry>". The directory is not
// cleaned, so "a/" yields "a//entry" exactly like the argument suggests.
func (s Sample) Path() string {
	return s.Dir + "/" + s.Entry
}
