package blockstree

import (
	"fmt"
	"path/filepath"

	"github.com/noobaa/blocks-tree-migrate/pkg/util"
)

// Init creates the tree root with the catch-all directory and all
// ShardCount shard directories inside. Directories that already exist are
// left as is, so Init may be called repeatedly and on partially built
// trees.
func (t *Tree) Init() error {
	err := util.MkdirAllX(t.RootPath, t.Permissions)
	if err != nil {
		return fmt.Errorf("mkdir all for %q: %w", t.RootPath, err)
	}

	p := filepath.Join(t.RootPath, CatchAllDir)

	err = util.MkdirAllX(p, t.Permissions)
	if err != nil {
		return fmt.Errorf("mkdir catch-all %q: %w", p, err)
	}

	for i := uint64(0); i < ShardCount; i++ {
		p = filepath.Join(t.RootPath, ShardDirName(i))

		err = util.MkdirAllX(p, t.Permissions)
		if err != nil {
			return fmt.Errorf("mkdir shard %q: %w", p, err)
		}
	}

	return nil
}
