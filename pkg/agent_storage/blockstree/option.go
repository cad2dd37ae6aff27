package blockstree

import (
	"io/fs"
)

type Option func(*Tree)

func WithPath(p string) Option {
	return func(t *Tree) {
		t.RootPath = p
	}
}

func WithPerm(p fs.FileMode) Option {
	return func(t *Tree) {
		t.Permissions = p
	}
}
