package scanners

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
)

func writeFont(t *testing.T, dir string, name string, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.MkdirAll(filepath.Dir(path), 0o700)
	assert.Nil(t, err)

	err = os.WriteFile(path, []byte(content), 0o600)
	assert.Nil(t, err)

	return path
}

func scannedNames(files *model.FontFiles) []string {
	return lo.Map(files.List(), func(f *model.FontFile, _ int) string {
		return f.Name
	})
}

func TestScanFindsFontsByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Custom One.ttf", "aaaa")
	writeFont(t, dir, "Custom Two.otf", "bb")
	writeFont(t, dir, filepath.Join("sub", "Custom Three.TTC"), "c")
	writeFont(t, dir, "notes.txt", "not a font")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, 3, files.Len())
	assert.Contains(t, scannedNames(files), "Custom One.ttf")
	assert.Contains(t, scannedNames(files), "Custom Two.otf")
	assert.Contains(t, scannedNames(files), "Custom Three.TTC")

	file := files.Get(filepath.Join(dir, "Custom One.ttf"))
	assert.NotNil(t, file)
	assert.Equal(t, int64(4), file.Size)
	assert.False(t, file.SeenAt.IsZero())
}

func TestScanSkipsMissingDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Custom.ttf", "aaaa")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{filepath.Join(dir, "missing"), dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, 1, files.Len())
}

func TestScanEarlierDirectoryWins(t *testing.T) {
	t.Parallel()

	dir1 := t.TempDir()
	dir2 := t.TempDir()
	first := writeFont(t, dir1, "Fira Code.ttf", "user copy")
	writeFont(t, dir2, "fira code.ttf", "system copy")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir1, dir2}, nil)
	assert.Nil(t, err)

	assert.Equal(t, 1, files.Len())
	assert.NotNil(t, files.Get(first))
}

func TestScanKeepsFontsDifferingOnlyByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Custom.ttf", "truetype")
	writeFont(t, dir, "Custom.otf", "opentype")
	writeFont(t, dir, "Custom Font.ttf", "spaced")
	writeFont(t, dir, "CustomFont.ttf", "unspaced")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, 4, files.Len())
	assert.Contains(t, scannedNames(files), "Custom.ttf")
	assert.Contains(t, scannedNames(files), "Custom.otf")
	assert.Contains(t, scannedNames(files), "Custom Font.ttf")
	assert.Contains(t, scannedNames(files), "CustomFont.ttf")
}

func TestScanAppliesExclusions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Arial.ttf", "shipped with windows")
	writeFont(t, dir, "Segoe UI.ttf", "shipped with windows")
	writeFont(t, dir, "Custom.ttf", "aaaa")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, []string{"Custom.ttf"}, scannedNames(files))
}

func TestScanReplacesExclusions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Arial.ttf", "aaaa")
	writeFont(t, dir, "Custom.ttf", "bbbb")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, &Options{
		Exclusions: NewExclusionSet("Custom"),
	})
	assert.Nil(t, err)

	assert.Equal(t, []string{"Arial.ttf"}, scannedNames(files))
}

func TestScanSkipsSymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := writeFont(t, dir, "Custom.ttf", "aaaa")

	err := os.Symlink(target, filepath.Join(dir, "Alias.ttf"))
	if err != nil {
		t.Skip("symlinks not supported here")
	}

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, []string{"Custom.ttf"}, scannedNames(files))
}

func TestScanRespectsIgnoreFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFont(t, dir, "Custom.ttf", "aaaa")
	writeFont(t, dir, "Broken.ttf", "bbbb")
	writeFont(t, dir, IgnoreFileName, "Broken.*\n")

	scanner := NewScanner(consoles.NewStdOutConsole())

	files, err := scanner.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	assert.Equal(t, []string{"Custom.ttf"}, scannedNames(files))
}
