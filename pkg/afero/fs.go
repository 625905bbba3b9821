// Package afero wraps spf13's afero with guaranteed symlink support, which
// the vendor override needs and the base afero.Fs interface doesn't expose.
package afero

import (
	"github.com/spf13/afero"
)

type File interface {
	afero.File
}

// Fs is an afero.Fs that can also create and read symbolic links.
type Fs interface {
	afero.Fs
	afero.Linker
	afero.LinkReader
}

func Exists(fs Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

func DirExists(fs Fs, path string) (bool, error) {
	return afero.DirExists(fs, path)
}
