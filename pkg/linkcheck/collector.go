package linkcheck

import (
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/bitdoctor/pkg/logging"
)

// Collector resolves candidates concurrently and gathers broken links
type Collector struct {
	resolver *Resolver
	limit    int
}

// Option configures a Collector
type Option func(*Collector)

// WithLimit caps the number of concurrent resolutions. n <= 0 means no cap.
func WithLimit(n int) Option {
	return func(c *Collector) {
		c.limit = n
	}
}

// NewCollector creates a Collector using resolver
func NewCollector(resolver *Resolver, opts ...Option) *Collector {
	c := &Collector{resolver: resolver}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect resolves every path and waits for all of them before returning.
// Each task writes only its own slot; results are merged after the join, so
// the output follows the order of paths.
func (c *Collector) Collect(paths []string) Collection {
	logger := logging.GetLogger("linkcheck.collector")

	resolutions := make([]Resolution, len(paths))

	var g errgroup.Group
	if c.limit > 0 {
		g.SetLimit(c.limit)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			resolutions[i] = c.resolver.Resolve(path)
			return nil
		})
	}
	// Tasks never fail: every outcome, errors included, is in its slot.
	_ = g.Wait()

	collection := Collection{Checked: len(paths)}
	for _, res := range resolutions {
		switch res.Status {
		case TargetMissing:
			collection.Broken = append(collection.Broken, BrokenSymlink{
				SymlinkPath:  res.Path,
				BrokenPath:   res.Target,
				PathToDelete: PathToDelete(res.Path),
			})
		case ResolutionError:
			logger.Warn().Err(res.Err).Str("path", res.Path).Msg("cannot resolve candidate link")
			collection.Unresolved = append(collection.Unresolved, UnresolvedLink{
				Path:   res.Path,
				Target: res.Target,
				Reason: rootCause(res.Err).Error(),
				Err:    res.Err,
			})
		case NotALink, TargetExists:
			logger.Trace().Str("path", res.Path).Stringer("status", res.Status).Msg("candidate ok")
		}
	}

	logger.Debug().
		Int("checked", collection.Checked).
		Int("broken", len(collection.Broken)).
		Int("unresolved", len(collection.Unresolved)).
		Msg("collection complete")

	return collection
}

// rootCause returns the innermost error of a wrap chain
func rootCause(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}
