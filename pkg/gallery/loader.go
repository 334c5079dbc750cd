package gallery

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/lovewall/pkg/errors"
)

// DoneFunc receives the outcome of one queued decode.
type DoneFunc func(h Handle, err error)

type pending struct {
	name string
	data []byte
	done DoneFunc
}

// Loader is a queue of pending decode operations.
type Loader struct {
	workers int
	queue   []pending
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithWorkers bounds the number of concurrent decodes (default GOMAXPROCS).
func WithWorkers(n int) LoaderOption { return func(l *Loader) { l.workers = n } }

// NewLoader returns an empty queue.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(l)
	}
	if l.workers < 1 {
		l.workers = 1
	}
	return l
}

// Len returns the number of queued items.
func (l *Loader) Len() int { return len(l.queue) }

// Enqueue adds an item. done may be nil.
func (l *Loader) Enqueue(name string, data []byte, done DoneFunc) {
	l.queue = append(l.queue, pending{name: name, data: data, done: done})
}

// Run decodes every queued item and then invokes the completion callbacks
// in enqueue order. Per-item failures go to the callbacks; Run itself only
// fails when ctx is cancelled, in which case no callbacks run. The queue is
// empty afterwards.
func (l *Loader) Run(ctx context.Context) error {
	queue := l.queue
	l.queue = nil

	type result struct {
		h   Handle
		err error
	}
	results := make([]result, len(queue))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for i, p := range queue {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := Decode(p.name, p.data)
			results[i] = result{h, err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, p := range queue {
		if p.done != nil {
			p.done(results[i].h, results[i].err)
		}
	}
	return nil
}

// Batch is the outcome of LoadDir.
type Batch struct {
	Handles  []Handle
	Rejected []error
}

// LoadDir decodes every file with an image extension in dir, sorted by
// name. Hidden files and subdirectories are skipped.
func LoadDir(ctx context.Context, dir string, opts ...LoaderOption) (Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Batch{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "image folder %s", dir)
		}
		return Batch{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "read image folder %s", dir)
	}

	names := ImageFiles(entries)
	l := NewLoader(opts...)
	var b Batch
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			b.Rejected = append(b.Rejected, errors.Wrap(errors.ErrCodeUnsupportedImage, err, "read %s", name))
			continue
		}
		l.Enqueue(name, data, func(h Handle, err error) {
			if err != nil {
				b.Rejected = append(b.Rejected, err)
				return
			}
			b.Handles = append(b.Handles, h)
		})
	}
	if err := l.Run(ctx); err != nil {
		return Batch{}, err
	}
	return b, nil
}

// ImageFiles filters dir entries down to visible image files, sorted by name.
func ImageFiles(entries []os.DirEntry) []string {
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !IsImageName(name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
