// Package entryfilter decides which directory entries take part in a sample.
package entryfilter

import (
	"io/fs"
	"strings"

	"github.com/taigrr/dirsample/internal/types"
)

// Filter accepts or rejects a single directory entry.
type Filter interface {
	Accept(entry fs.DirEntry) bool
}

// Func adapts an ordinary function to the Filter interface.
type Func func(entry fs.DirEntry) bool

// Accept calls f(entry).
func (f Func) Accept(entry fs.DirEntry) bool {
	return f(entry)
}

// NameFilter matches entry names against a substring pattern.
type NameFilter struct {
	config types.FilterConfig
	folded string
}

// Name creates a NameFilter for the given configuration.
func Name(config types.FilterConfig) *NameFilter {
	nf := &NameFilter{config: config}
	if config.CaseInsensitive {
		nf.folded = foldASCII(config.Pattern)
	}
	return nf
}

// Accept reports whether the entry name contains the pattern.
func (nf *NameFilter) Accept(entry fs.DirEntry) bool {
	return nf.match(entry.Name())
}

func (nf *NameFilter) match(name string) bool {
	if !nf.config.HasPattern() {
		return true
	}
	if nf.config.CaseInsensitive {
		return strings.Contains(foldASCII(name), nf.folded)
	}
	return strings.Contains(name, nf.config.Pattern)
}

// foldASCII lowercases ASCII letters only. Other bytes are left untouched so
// multi-byte names compare byte for byte.
func foldASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

type dirFilter struct{}

func (dirFilter) Accept(entry fs.DirEntry) bool {
	return entry.IsDir()
}

// Dirs returns a Filter that keeps directories only. The entry type comes
// from the listing itself, so a symlink to a directory is not a directory.
func Dirs() Filter {
	return dirFilter{}
}

// All returns a Filter that accepts every entry.
func All() Filter {
	return Func(func(fs.DirEntry) bool { return true })
}

// And returns a Filter that accepts an entry only when every filter does.
// With no filters it accepts everything.
func And(filters ...Filter) Filter {
	return Func(func(entry fs.DirEntry) bool {
		for _, f := range filters {
			if !f.Accept(entry) {
				return false
			}
		}
		return true
	})
}
