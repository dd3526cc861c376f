package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/pescuma/fontvault/lib/archivers"
	"github.com/pescuma/fontvault/lib/catalogs"
	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/groupers"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/publishers"
	"github.com/pescuma/fontvault/lib/scanners"
	"github.com/pescuma/fontvault/lib/storages"
	"github.com/pescuma/fontvault/lib/storages/orm"
	"github.com/pescuma/fontvault/lib/utils"
)

type Workspace struct {
	console consoles.Console
	storage storages.Storage
}

func NewWorkspace(file string) (*Workspace, error) {
	if file == "" {
		if _, err := os.Stat("./.fontvault"); err == nil {
			file = "./.fontvault/fontvault.sqlite"
		} else {
			file = "~/.fontvault/fontvault.sqlite"
		}
	}

	console := consoles.NewStdOutConsole()

	var storage storages.Storage
	var err error
	switch {
	case file == ":memory:":
		storage, err = orm.NewGormStorage(orm.WithSqliteInMemory(), console)

	case strings.HasSuffix(file, ".sqlite"):
		file, err = utils.PathAbs(file)
		if err != nil {
			return nil, err
		}

		err = createWorkspaceDir(file)
		if err != nil {
			return nil, err
		}

		storage, err = orm.NewGormStorage(orm.WithSqlite(file), console)

	default:
		return nil, fmt.Errorf("unknown storage type for file %v", file)
	}
	if err != nil {
		return nil, err
	}

	return &Workspace{
		console: console,
		storage: storage,
	}, nil
}

func createWorkspaceDir(file string) error {
	path := filepath.Dir(file)

	if _, err := os.Stat(path); err != nil {
		fmt.Printf("Creating workspace at %v\n", path)
		err = os.MkdirAll(path, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workspace) Close() error {
	return w.storage.Close()
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Execute(f func(consoles.Console, storages.Storage) error) error {
	return f(w.console, w.storage)
}

func (w *Workspace) LoadFontFiles() (*model.FontFiles, error) {
	return w.storage.LoadFontFiles()
}

func (w *Workspace) LoadFamilies() (*model.Families, error) {
	return w.storage.LoadFamilies()
}

func (w *Workspace) LoadArchives() (*model.Archives, error) {
	return w.storage.LoadArchives()
}

func (w *Workspace) LoadPublishes() (*model.Publishes, error) {
	return w.storage.LoadPublishes()
}

// Scan finds font files in the default Windows font directories plus
// extraDirs and replaces the stored font list with the result.
func (w *Workspace) Scan(extraDirs []string, opts *scanners.Options) (*model.FontFiles, error) {
	if opts == nil {
		opts = &scanners.Options{}
	}

	if opts.Exclusions == nil {
		path, err := w.GetGlobalConfig("scan.exclusions")
		if err != nil {
			return nil, err
		}

		if path != "" {
			opts.Exclusions, err = scanners.NewExclusionSetFromFile(path)
			if err != nil {
				return nil, err
			}
		}
	}

	extra, err := catalogs.Expand(extraDirs)
	if err != nil {
		return nil, err
	}

	dirs := append(catalogs.Default(), extra...)

	scanner := scanners.NewScanner(w.console)

	files, err := scanner.Scan(dirs, opts)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteFontFiles(files)
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Group assigns every stored font file to a family and replaces the stored
// family list with the result.
func (w *Workspace) Group(opts *groupers.Options) (*model.Families, error) {
	if opts == nil {
		opts = &groupers.Options{}
	}

	if len(opts.Suffixes) == 0 {
		vocabulary, err := w.GetGlobalConfig("families.suffixes")
		if err != nil {
			return nil, err
		}

		if vocabulary != "" {
			opts.Suffixes = strings.Split(vocabulary, ",")
		}
	}

	files, err := w.storage.LoadFontFiles()
	if err != nil {
		return nil, err
	}

	grouper := groupers.NewGrouper(w.console)

	families, err := grouper.Group(files, opts)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteFamilies(families)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteFontFiles(files)
	if err != nil {
		return nil, err
	}

	return families, nil
}

// Archive builds one zip per stored family into outputDir.
func (w *Workspace) Archive(outputDir string, opts *archivers.Options) (*archivers.Result, error) {
	families, err := w.storage.LoadFamilies()
	if err != nil {
		return nil, err
	}

	builder := archivers.NewBuilder(w.console)

	result, err := builder.BuildAll(families, outputDir, opts)
	if err != nil {
		return nil, err
	}

	err = w.storage.WriteArchives(result.Archives)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Publish copies the stored archives into a git repository, commits and
// pushes. The attempt is recorded in the publish history whether or not it
// succeeds.
func (w *Workspace) Publish(threshold int64, opts *publishers.Options) (*publishers.Outcome, error) {
	opts, threshold, err := w.fillPublishDefaults(opts, threshold)
	if err != nil {
		return nil, err
	}

	archives, err := w.storage.LoadArchives()
	if err != nil {
		return nil, err
	}

	plan := publishers.NewPlan(archives, threshold)

	publish := model.NewPublish()
	publish.Families = archives.Len()
	publish.TotalSize = plan.TotalCompressedSize()

	publisher := publishers.NewPublisher(w.console)

	outcome, pubErr := publisher.Publish(plan, opts)

	publish.State = outcome.State
	publish.CommitHash = outcome.CommitHash
	publish.Message = outcome.Message
	publish.FinishedAt = time.Now().Local()

	err = w.storage.WritePublish(publish)
	if err != nil {
		return outcome, err
	}

	return outcome, pubErr
}

func (w *Workspace) PublishPlan(threshold int64) (*publishers.Plan, error) {
	_, threshold, err := w.fillPublishDefaults(nil, threshold)
	if err != nil {
		return nil, err
	}

	archives, err := w.storage.LoadArchives()
	if err != nil {
		return nil, err
	}

	return publishers.NewPlan(archives, threshold), nil
}

// fillPublishDefaults falls back to the stored configuration for publish
// settings not given explicitly, like Scan and Group do for theirs.
func (w *Workspace) fillPublishDefaults(opts *publishers.Options, threshold int64) (*publishers.Options, int64, error) {
	if opts == nil {
		opts = &publishers.Options{}
	}

	if opts.RemoteURL == "" {
		remote, err := w.GetGlobalConfig("publish.remote")
		if err != nil {
			return nil, 0, err
		}

		opts.RemoteURL = remote
	}

	if opts.Branch == "" {
		branch, err := w.GetGlobalConfig("publish.branch")
		if err != nil {
			return nil, 0, err
		}

		opts.Branch = branch
	}

	if threshold <= 0 {
		value, err := w.GetGlobalConfig("publish.threshold")
		if err != nil {
			return nil, 0, err
		}

		if value != "" {
			bytes, err := humanize.ParseBytes(value)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "invalid publish.threshold: %v", value)
			}

			threshold = int64(bytes)
		}
	}

	return opts, threshold, nil
}

func (w *Workspace) SetGlobalConfig(config string, value string) (bool, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return false, err
	}

	v, ok := (*cfg)[config]
	if ok && v == value {
		return false, nil
	}

	(*cfg)[config] = value

	return true, nil
}

func (w *Workspace) GetGlobalConfig(config string) (string, error) {
	cfg, err := w.storage.LoadConfig()
	if err != nil {
		return "", err
	}

	return (*cfg)[config], nil
}

func (w *Workspace) Write() error {
	w.console.Printf("Writing results...\n")

	return w.storage.WriteConfig()
}
