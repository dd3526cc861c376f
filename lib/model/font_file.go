package model

import (
	"path/filepath"
	"time"
)

// FontFile is one font found on disk. Fields are set by the scanner and not
// changed afterwards, except Family which the grouper fills in.
type FontFile struct {
	Path string
	ID   ID

	Name   string
	Size   int64
	Family string

	SeenAt time.Time
}

func NewFontFile(path string, id ID) *FontFile {
	return &FontFile{
		Path: path,
		ID:   id,
		Name: filepath.Base(path),
	}
}

// Stem is the file name without its extension.
func (f *FontFile) Stem() string {
	name := f.Name
	return name[:len(name)-len(filepath.Ext(name))]
}
