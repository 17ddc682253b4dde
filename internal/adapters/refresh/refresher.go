// Package refresh fingerprints project trees so hosts can tell real edits from
// files a build merely touched.
package refresh

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cargokit/internal/core/domain"
	"go.trai.ch/cargokit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceRefresher = (*Refresher)(nil)

// skipDirectories are never fingerprinted.
var skipDirectories = map[string]bool{
	".git":              true,
	".jj":               true,
	"target":            true,
	domain.StateDirName: true,
}

// Ignorer decides which paths below a root are not part of the fingerprint.
type Ignorer interface {
	Ignored(path string) bool
}

// Listener is notified after every refresh of root with the paths whose
// content changed since the previous snapshot, in sorted order.
type Listener func(ctx context.Context, root string, changed []string)

type entry struct {
	size    int64
	modTime time.Time
	sum     uint64
}

type snapshot map[string]entry

// Refresher keeps a content fingerprint per project root.
type Refresher struct {
	logger ports.Logger

	mu sync.Mutex
	// snapshots are never modified once stored; updates store a new map.
	snapshots map[string]snapshot
	ignorers  map[string]Ignorer
	listeners []*subscription
}

type subscription struct {
	fn Listener
}

// NewRefresher creates a Refresher without any tracked roots.
func NewRefresher(logger ports.Logger) *Refresher {
	return &Refresher{
		logger:    logger,
		snapshots: make(map[string]snapshot),
		ignorers:  make(map[string]Ignorer),
	}
}

// Subscribe registers l for refresh notifications and returns a function that
// removes it again.
func (r *Refresher) Subscribe(l Listener) (unsubscribe func()) {
	sub := &subscription{fn: l}

	r.mu.Lock()
	r.listeners = append(r.listeners, sub)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.listeners = slices.DeleteFunc(r.listeners, func(s *subscription) bool { return s == sub })
	}
}

// Track fingerprints root as the baseline for later comparisons.
// Paths reported by ignorer are left out. ignorer may be nil.
func (r *Refresher) Track(ctx context.Context, root string, ignorer Ignorer) error {
	root = filepath.Clean(root)

	r.mu.Lock()
	r.ignorers[root] = ignorer
	r.mu.Unlock()

	snap, err := r.scan(ctx, root, ignorer, nil)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.snapshots[root] = snap
	r.mu.Unlock()

	r.logger.Debug(fmt.Sprintf("fingerprinted %d files below %s", len(snap), root))
	return nil
}

// RefreshRecursive rescans root, replaces its snapshot and notifies all listeners
// synchronously. Listeners are notified even when nothing changed.
func (r *Refresher) RefreshRecursive(ctx context.Context, root string) error {
	root = filepath.Clean(root)

	r.mu.Lock()
	ignorer := r.ignorers[root]
	prev := r.snapshots[root]
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()

	next, err := r.scan(ctx, root, ignorer, prev)
	if err != nil {
		return err
	}

	changed := diff(prev, next)

	r.mu.Lock()
	r.snapshots[root] = next
	r.mu.Unlock()

	r.logger.Debug(fmt.Sprintf("refreshed %s: %d files, %d changed", root, len(next), len(changed)))

	for _, sub := range listeners {
		sub.fn(ctx, root, changed)
	}
	return nil
}

// Changed returns the paths below a tracked root whose content differs from the
// snapshot, and records their new fingerprints. Directories and paths of
// untracked roots are always reported.
func (r *Refresher) Changed(root string, paths []string) []string {
	root = filepath.Clean(root)

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, tracked := r.snapshots[root]
	// RefreshRecursive may be scanning against prev without the lock.
	snap := maps.Clone(prev)
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if !tracked {
			out = append(out, path)
			continue
		}

		old, known := snap[path]
		info, err := os.Stat(path)
		switch {
		case err != nil:
			// Removed or unreadable.
			if known {
				delete(snap, path)
			}
			out = append(out, path)
		case !info.Mode().IsRegular():
			out = append(out, path)
		default:
			e, err := fingerprint(path, info, old, known)
			if err != nil {
				out = append(out, path)
				continue
			}
			snap[path] = e
			if !known || e.sum != old.sum {
				out = append(out, path)
			}
		}
	}
	if tracked {
		r.snapshots[root] = snap
	}
	return out
}

func (r *Refresher) scan(ctx context.Context, root string, ignorer Ignorer, prev snapshot) (snapshot, error) {
	next := make(snapshot, len(prev))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if d.IsDir() {
			if path != root && (skipDirectories[d.Name()] || ignored(ignorer, path)) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || ignored(ignorer, path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // vanished while walking
		}
		old, known := prev[path]
		e, err := fingerprint(path, info, old, known)
		if err != nil {
			r.logger.Debug("cannot fingerprint " + path + ": " + err.Error())
			return nil
		}
		next[path] = e
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRefreshFailed.Error()), "root", root)
	}
	return next, nil
}

func ignored(ignorer Ignorer, path string) bool {
	return ignorer != nil && ignorer.Ignored(path)
}

// fingerprint hashes path unless its size and modification time match old.
func fingerprint(path string, info fs.FileInfo, old entry, known bool) (entry, error) {
	if known && old.size == info.Size() && old.modTime.Equal(info.ModTime()) {
		return old, nil
	}

	f, err := os.Open(path) //nolint:gosec // paths come from walking the project tree
	if err != nil {
		return entry{}, err
	}
	defer func() { _ = f.Close() }()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return entry{}, err
	}
	return entry{size: info.Size(), modTime: info.ModTime(), sum: h.Sum64()}, nil
}

func diff(prev, next snapshot) []string {
	var changed []string
	for path, e := range next {
		if old, ok := prev[path]; !ok || old.sum != e.sum {
			changed = append(changed, path)
		}
	}
	for path := range prev {
		if _, ok := next[path]; !ok {
			changed = append(changed, path)
		}
	}
	slices.Sort(changed)
	return changed
}
