package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFontFilesKeepDiscoveryOrder(t *testing.T) {
	t.Parallel()

	files := NewFontFiles()
	files.GetOrCreate("/fonts/z.ttf")
	files.GetOrCreate("/fonts/a.ttf")
	files.GetOrCreate("/fonts/z.ttf")

	assert.Equal(t, 2, files.Len())
	assert.Equal(t, "/fonts/z.ttf", files.List()[0].Path)
	assert.Equal(t, "/fonts/a.ttf", files.List()[1].Path)
}

func TestFontFilesAssignSequentialIDs(t *testing.T) {
	t.Parallel()

	files := NewFontFiles()
	a := files.GetOrCreate("/fonts/a.ttf")
	b := files.GetOrCreate("/fonts/b.ttf")

	assert.Equal(t, ID(1), a.ID)
	assert.Equal(t, ID(2), b.ID)
	assert.Same(t, a, files.GetOrCreate("/fonts/a.ttf"))
}

func TestFontFileStem(t *testing.T) {
	t.Parallel()

	files := NewFontFiles()

	assert.Equal(t, "Fira Code", files.GetOrCreate("/fonts/Fira Code.ttf").Stem())
	assert.Equal(t, "archive.tar", files.GetOrCreate("/fonts/archive.tar.gz").Stem())
}
