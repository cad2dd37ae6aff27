// Package migrate implements the one-shot restructuring of agent storage
// from flat per-node blocks directories into sharded blocks trees.
package migrate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/noobaa/blocks-tree-migrate/pkg/agent_storage/blockstree"
	"go.uber.org/zap"
)

// Migrator walks every node directory under the agent storage root and
// moves the contents of its blocks directory into a blocks_tree laid out
// as described in the blockstree package. The emptied blocks directory is
// removed afterwards.
//
// Unless the wet mode is enabled, Migrator only reports what it would do
// and performs no filesystem mutations at all.
type Migrator struct {
	cfg
}

type cfg struct {
	rootPath string

	wet     bool
	verbose bool

	perm fs.FileMode

	progressInterval uint64

	log *zap.Logger
}

const (
	blocksDir     = "blocks"
	blocksTreeDir = "blocks_tree"
)

// Directory entries are read in batches of this size to keep memory usage
// flat on nodes with millions of block files.
const readBatchSize = 1000

const defaultProgressInterval = 1000

// New creates, initializes and returns new Migrator instance.
func New(opts ...Option) *Migrator {
	m := &Migrator{
		cfg: cfg{
			perm:             0700,
			progressInterval: defaultProgressInterval,
			log:              zap.L(),
		},
	}

	for i := range opts {
		opts[i](&m.cfg)
	}

	return m
}

// Run performs the migration for every node under the root path.
//
// If some node lacks a blocks directory, the run stops there: the node is
// reported and no further nodes are processed. This mirrors the behavior
// of the original migration procedure and is deliberately kept; the halt
// is logged loudly so that an operator notices the remaining nodes were
// not touched.
//
// Any filesystem error aborts the run. Rerunning after a partial failure
// is safe: existing tree directories are reused and only files still left
// in blocks directories are moved.
func (m *Migrator) Run() error {
	dir, err := os.Open(m.rootPath)
	if err != nil {
		return fmt.Errorf("open storage root %q: %w", m.rootPath, err)
	}

	defer dir.Close()

	for {
		entries, err := dir.ReadDir(readBatchSize)

		for i := range entries {
			halt, err := m.migrateNode(entries[i].Name())
			if err != nil {
				return err
			}
			if halt {
				return nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read storage root %q: %w", m.rootPath, err)
		}
	}
}

// migrateNode processes a single node directory. The returned halt flag
// tells the caller to stop the whole run without an error.
func (m *Migrator) migrateNode(node string) (bool, error) {
	blocksPath := filepath.Join(m.rootPath, node, blocksDir)

	fi, err := os.Stat(blocksPath)
	if err != nil || !fi.IsDir() {
		m.log.Warn("skipping node without blocks directory, halting run",
			zap.String("path", blocksPath))
		return true, nil
	}

	treePath := filepath.Join(m.rootPath, node, blocksTreeDir)

	m.log.Info("creating tree directories", zap.String("path", treePath))

	if m.wet {
		t := blockstree.New(
			blockstree.WithPath(treePath),
			blockstree.WithPerm(m.perm),
		)

		err = t.Init()
		if err != nil {
			return false, fmt.Errorf("init blocks tree %q: %w", treePath, err)
		}
	}

	m.log.Info("moving blocks", zap.String("from", blocksPath), zap.String("to", treePath))

	count, err := m.moveBlocks(blocksPath, treePath)
	if err != nil {
		return false, err
	}

	m.log.Info("finished node, removing blocks directory",
		zap.String("path", blocksPath), zap.Uint64("blocks", count))

	if m.wet {
		err = os.Remove(blocksPath)
		if err != nil {
			return false, fmt.Errorf("remove emptied blocks directory: %w", err)
		}
	}

	return false, nil
}

// moveBlocks streams the entries of the blocks directory and renames each
// one into its destination tree directory. It returns the number of
// processed entries.
func (m *Migrator) moveBlocks(blocksPath, treePath string) (uint64, error) {
	dir, err := os.Open(blocksPath)
	if err != nil {
		return 0, fmt.Errorf("open blocks directory %q: %w", blocksPath, err)
	}

	defer dir.Close()

	var count uint64

	for {
		entries, err := dir.ReadDir(readBatchSize)

		for i := range entries {
			name := entries[i].Name()
			dirName := blockstree.DirName(name)

			if m.verbose {
				m.log.Info("moving block",
					zap.String("file", name), zap.String("dir", dirName))
			}

			if m.wet {
				err := os.Rename(
					filepath.Join(blocksPath, name),
					filepath.Join(treePath, dirName, name),
				)
				if err != nil {
					return count, fmt.Errorf("move block %q into %q: %w", name, dirName, err)
				}
			}

			count++
			if count%m.progressInterval == 0 {
				m.log.Info("progress", zap.Uint64("count", count))
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("read blocks directory %q: %w", blocksPath, err)
		}
	}
}
