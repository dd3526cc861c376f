package archivers

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/utils"
)

const ArchiveExtension = ".zip"

type Builder struct {
	console consoles.Console
}

type Options struct {
	// Filter restricts which families get archived ("Fira*"). Empty means
	// all families.
	Filter string
}

// Result of building all families. Failed families are reported, not fatal:
// the remaining families still get their archives.
type Result struct {
	Archives *model.Archives
	Failed   []string
}

func NewBuilder(console consoles.Console) *Builder {
	return &Builder{
		console: console,
	}
}

// Build compresses one family into outputDir. The archive is written to a
// temporary file and renamed into place, so a crash never leaves a partial
// archive at the final path. Member order is the family's font order and
// entry metadata is fixed, making rebuilds from unchanged bytes
// byte-identical.
func (b *Builder) Build(family *model.Family, outputDir string) (*model.Archive, error) {
	err := os.MkdirAll(outputDir, 0o700)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: error creating output directory", family.Name)
	}

	path := filepath.Join(outputDir, SanitizeName(family.Name)+ArchiveExtension)

	uncompressed, err := b.writeArchive(family, outputDir, path)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: error creating archive", family.Name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%v: error reading archive size", family.Name)
	}

	archive := model.NewArchive(family.Name, 0)
	archive.Path = path
	archive.FileCount = len(family.Fonts)
	archive.UncompressedSize = uncompressed
	archive.CompressedSize = info.Size()
	archive.BuiltAt = time.Now()

	return archive, nil
}

func (b *Builder) writeArchive(family *model.Family, outputDir string, path string) (int64, error) {
	tmp, err := os.CreateTemp(outputDir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	uncompressed, err := writeZip(tmp, family.Fonts)
	if err != nil {
		return 0, err
	}

	err = tmp.Sync()
	if err != nil {
		return 0, err
	}

	err = tmp.Close()
	if err != nil {
		return 0, err
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return 0, err
	}

	return uncompressed, nil
}

func writeZip(w io.Writer, fonts []*model.FontFile) (int64, error) {
	zw := zip.NewWriter(w)

	var total int64

	for _, font := range fonts {
		// Only name and method in the header: modification times would
		// break byte-identity between rebuilds
		ew, err := zw.CreateHeader(&zip.FileHeader{
			Name:   font.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return 0, err
		}

		n, err := copyFile(ew, font.Path)
		if err != nil {
			return 0, err
		}

		total += n
	}

	err := zw.Close()
	if err != nil {
		return 0, err
	}

	return total, nil
}

func copyFile(w io.Writer, path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "error reading %v", path)
	}
	defer f.Close()

	return io.Copy(w, f)
}

// BuildAll archives families one at a time, in order. A family that fails
// is recorded and skipped; it does not abort the run.
func (b *Builder) BuildAll(families *model.Families, outputDir string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}

	selected, err := filterFamilies(families.List(), opts.Filter)
	if err != nil {
		return nil, err
	}

	b.console.Printf("Creating archives for %v font families...\n", len(selected))

	result := &Result{
		Archives: model.NewArchives(),
	}

	bar := utils.NewProgressBar(len(selected))

	for _, family := range selected {
		bar.Describe(utils.TruncateName(family.Name))

		archive, err := b.Build(family, outputDir)
		if err != nil {
			b.console.Printf("Skipping family %v: %v\n", family.Name, err)
			result.Failed = append(result.Failed, family.Name)
			_ = bar.Add(1)
			continue
		}

		stored := result.Archives.GetOrCreate(family.Name)
		stored.Path = archive.Path
		stored.FileCount = archive.FileCount
		stored.UncompressedSize = archive.UncompressedSize
		stored.CompressedSize = archive.CompressedSize
		stored.BuiltAt = archive.BuiltAt

		_ = bar.Add(1)
	}

	return result, nil
}

func filterFamilies(families []*model.Family, filter string) ([]*model.Family, error) {
	if filter == "" {
		return families, nil
	}

	g, err := glob.Compile(filter)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid family filter: %v", filter)
	}

	var result []*model.Family
	for _, family := range families {
		if g.Match(family.Name) {
			result = append(result, family)
		}
	}

	return result, nil
}

var unsafeNameChars = regexp.MustCompile(`[^\w\-.]`)

// SanitizeName makes a family name safe to use as a file name.
func SanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
