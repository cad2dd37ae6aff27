package blockstree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlockName(t *testing.T) {
	for _, tc := range []struct {
		name string
		id   BlockID
		ok   bool
	}{
		{name: "a.data", id: 0xa, ok: true},
		{name: "1f4.meta", id: 0x1f4, ok: true},
		{name: "DEADBEEF.data", id: 0xdeadbeef, ok: true},
		{name: "0.meta", id: 0, ok: true},
		{name: "ffffffffffffffff.data", id: 0xffffffffffffffff, ok: true},
		{name: "zz.data"},
		{name: "a.datax"},
		{name: "a.met"},
		{name: "a.DATA"},
		{name: ".data"},
		{name: "a."},
		{name: "a"},
		{name: "abc.meta.bak"},
		{name: "a.data.meta"},
		{name: "-1.data"},
		{name: "0x1f.data"},
		// does not fit into 64 bits
		{name: "10000000000000000.data"},
	} {
		id, ok := ParseBlockName(tc.name)
		require.Equal(t, tc.ok, ok, tc.name)
		require.Equal(t, tc.id, id, tc.name)
	}
}

func TestDirName(t *testing.T) {
	require.Equal(t, "00a.blocks", DirName("a.data"))
	require.Equal(t, "1f4.blocks", DirName("1f4.meta"))

	// only the 3 lowest hex digits select the shard
	require.Equal(t, "123.blocks", DirName("fff123.data"))
	require.Equal(t, "fff.blocks", DirName("ffffffffffffffff.meta"))
	require.Equal(t, "000.blocks", DirName("0.data"))

	require.Equal(t, CatchAllDir, DirName("zz.data"))
	require.Equal(t, CatchAllDir, DirName("abc.meta.bak"))
	require.Equal(t, CatchAllDir, DirName("a.bak"))
	require.Equal(t, CatchAllDir, DirName("noext"))
	require.Equal(t, CatchAllDir, DirName(""))
}

func TestShardDirName(t *testing.T) {
	require.Equal(t, "000.blocks", ShardDirName(0))
	require.Equal(t, "00f.blocks", ShardDirName(0xf))
	require.Equal(t, "fff.blocks", ShardDirName(0xfff))
}

func TestTreeInit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blocks_tree")

	tr := New(
		WithPath(root),
		WithPerm(os.ModePerm),
	)

	require.NoError(t, tr.Init())

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, ShardCount+1)

	for _, name := range []string{"000.blocks", "7b1.blocks", "fff.blocks", CatchAllDir} {
		fi, err := os.Stat(filepath.Join(root, name))
		require.NoError(t, err)
		require.True(t, fi.IsDir())
	}

	t.Run("repeated init", func(t *testing.T) {
		require.NoError(t, tr.Init())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, ShardCount+1)
	})

	t.Run("partially built tree", func(t *testing.T) {
		require.NoError(t, os.RemoveAll(filepath.Join(root, "7b1.blocks")))
		require.NoError(t, tr.Init())

		fi, err := os.Stat(filepath.Join(root, "7b1.blocks"))
		require.NoError(t, err)
		require.True(t, fi.IsDir())
	})
}

func TestTreeDirPath(t *testing.T) {
	tr := New(WithPath("/srv/node1/blocks_tree"))

	require.Equal(t, filepath.Join("/srv/node1/blocks_tree", "00a.blocks"), tr.DirPath("a.data"))
	require.Equal(t, filepath.Join("/srv/node1/blocks_tree", CatchAllDir), tr.DirPath("zz.data"))
}
