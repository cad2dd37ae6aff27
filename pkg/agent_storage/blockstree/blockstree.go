package blockstree

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
)

// Tree represents the sharded on-disk layout of agent block files. Block
// files are grouped into ShardCount subdirectories of the root by the
// numeric ID encoded in their names; files with unrecognized names live in
// the catch-all subdirectory.
type Tree struct {
	Info
}

// Info groups the information about the tree root.
type Info struct {
	// Permission bits of the created directories.
	Permissions fs.FileMode

	// Full path to the root directory.
	RootPath string
}

// BlockID is the numeric block identifier encoded as the base name of a
// block file.
type BlockID uint64

const (
	// ShardCount is the number of shard directories in a tree.
	ShardCount = 0x1000

	// DirSuffix is the suffix of every destination directory name in a
	// tree, shards and catch-all alike.
	DirSuffix = ".blocks"

	// CatchAllDir is the name of the directory collecting block files
	// whose names do not encode a block ID.
	CatchAllDir = "other" + DirSuffix
)

// Recognized block file extensions.
const (
	DataExtension = "data"
	MetaExtension = "meta"
)

// New creates new Tree with the given options.
func New(opts ...Option) *Tree {
	t := &Tree{
		Info: Info{
			Permissions: 0700,
			RootPath:    "./",
		},
	}

	for i := range opts {
		opts[i](t)
	}

	return t
}

// ParseBlockName parses the numeric block ID from a block file name. The
// name must consist of exactly two dot-separated components with a
// base-16 first component and a 'data' or 'meta' extension. The second
// return value is false if the name does not follow the pattern, including
// IDs that do not fit into 64 bits.
func ParseBlockName(name string) (BlockID, bool) {
	ss := strings.Split(name, ".")
	if len(ss) != 2 {
		return 0, false
	}

	if ss[1] != DataExtension && ss[1] != MetaExtension {
		return 0, false
	}

	id, err := strconv.ParseUint(ss[0], 16, 64)
	if err != nil {
		return 0, false
	}

	return BlockID(id), true
}

// DirName returns the name of the tree directory the named block file
// belongs to: the shard directory of its ID modulo ShardCount, or
// CatchAllDir if the name does not parse.
func DirName(name string) string {
	id, ok := ParseBlockName(name)
	if !ok {
		return CatchAllDir
	}

	return ShardDirName(uint64(id) % ShardCount)
}

// ShardDirName returns the name of the shard directory with the given
// index. Index MUST be less than ShardCount.
func ShardDirName(i uint64) string {
	return fmt.Sprintf("%03x%s", i, DirSuffix)
}

// DirPath returns the full path of the tree directory the named block file
// belongs to.
func (t *Tree) DirPath(name string) string {
	return filepath.Join(t.RootPath, DirName(name))
}
