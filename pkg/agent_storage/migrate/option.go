package migrate

import (
	"io/fs"

	"go.uber.org/zap"
)

// Option represents Migrator's constructor option.
type Option func(*cfg)

// WithRootPath sets the agent storage root containing node directories.
func WithRootPath(p string) Option {
	return func(c *cfg) {
		c.rootPath = p
	}
}

// WithWet enables actual filesystem mutations. Without it the run is dry:
// all intended actions are reported and nothing is changed.
func WithWet(wet bool) Option {
	return func(c *cfg) {
		c.wet = wet
	}
}

// WithVerbose enables a log line per moved block file. It affects
// reporting only, never the destination of a file.
func WithVerbose(verbose bool) Option {
	return func(c *cfg) {
		c.verbose = verbose
	}
}

// WithPerm sets the permission bits for created tree directories.
func WithPerm(p fs.FileMode) Option {
	return func(c *cfg) {
		c.perm = p
	}
}

// WithProgressInterval sets how many processed files pass between running
// count reports. Zero resets the default.
func WithProgressInterval(n uint64) Option {
	return func(c *cfg) {
		if n == 0 {
			n = defaultProgressInterval
		}
		c.progressInterval = n
	}
}

// WithLogger sets the logger for progress reporting.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}
