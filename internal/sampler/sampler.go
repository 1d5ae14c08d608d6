// Package sampler picks one entry from each directory and prints its path.
package sampler

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/taigrr/dirsample/internal/entryfilter"
	"github.com/taigrr/dirsample/internal/logger"
	"github.com/taigrr/dirsample/internal/types"
)

// Stride is the spacing of candidate indexes in a sorted listing.
const Stride = 7

// Service samples directories with a fixed filter.
type Service struct {
	out        io.Writer
	filter     entryfilter.Filter
	log        *logger.ConsoleLogger
	dotEntries bool
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for skipped directories.
func WithLogger(l *logger.ConsoleLogger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDotEntries makes listings include "." and ".." the way scandir(3)
// reports them. Off by default because os.ReadDir omits them.
func WithDotEntries(enabled bool) Option {
	return func(s *Service) {
		s.dotEntries = enabled
	}
}

// New creates a Service writing sampled paths to out. A nil filter accepts
// every entry.
func New(out io.Writer, filter entryfilter.Filter, opts ...Option) *Service {
	if filter == nil {
		filter = entryfilter.All()
	}
	s := &Service{
		out:    out,
		filter: filter,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectIndex returns the largest multiple of Stride below n, or -1 when
// the listing is empty.
func SelectIndex(n int) int {
	if n < 1 {
		return -1
	}
	return Stride * ((n - 1) / Stride)
}

// List returns the accepted entry names of dir in ascending byte order.
func (s *Service) List(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &ListError{Dir: dir, Err: err}
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &ListError{Dir: dir, Err: err}
	}

	if s.dotEntries {
		entries = append(entries, dotEntry{dir: dir, name: "."}, dotEntry{dir: dir, name: ".."})
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.filter.Accept(entry) {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	return names, nil
}

// Sample lists dir and picks one entry. It reports false when dir cannot
// be read or nothing passes the filter.
func (s *Service) Sample(dir string) (types.Sample, bool) {
	names, err := s.List(dir)
	if err != nil {
		s.log.LogDebug(fmt.Sprintf("skipping %s: %v", dir, err))
		return types.Sample{}, false
	}

	idx := SelectIndex(len(names))
	if idx < 0 {
		s.log.LogDebug(fmt.Sprintf("skipping %s: no matching entries", dir))
		return types.Sample{}, false
	}

	s.log.LogTrace(fmt.Sprintf("%s: %d candidates, picked index %d", dir, len(names), idx))

	return types.Sample{
		Dir:   dir,
		Entry: names[idx],
		Index: idx,
		Total: len(names),
	}, true
}

// Run samples each directory in order and writes one line per sample.
// Unreadable or empty directories are skipped. Only a write failure or a
// cancelled context stops the run.
func (s *Service) Run(ctx context.Context, dirs []string) error {
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}

		sample, ok := s.Sample(dir)
		if !ok {
			continue
		}

		if _, err := io.WriteString(s.out, sample.Path()+"\n"); err != nil {
			s.log.LogError(fmt.Sprintf("writing %s: %v", sample.Path(), err))
			return fmt.Errorf("failed to write sample for %s: %w", dir, err)
		}
	}
	return nil
}

// dotEntry stands in for the "." and ".." records scandir(3) returns.
type dotEntry struct {
	dir  string
	name string
}

func (d dotEntry) Name() string { return d.name }
func (d dotEntry) IsDir() bool { return true }
func (d dotEntry) Type() fs.FileMode { return fs.ModeDir }

func (d dotEntry) Info() (fs.FileInfo, error) {
	return os.Stat(filepath.Join(d.dir, d.name))
}
