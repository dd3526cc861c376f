package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result > b {
			result = b
		}
	}
	return result
}

func Max[T constraints.Ordered](a T, bs ...T) T {
	result := a
	for _, b := range bs {
		if result < b {
			result = b
		}
	}
	return result
}

func IIf[T any](test bool, ifTrue, ifFalse T) T {
	if test {
		return ifTrue
	} else {
		return ifFalse
	}
}

func Coalesce[T comparable](vs ...T) T {
	var def T

	for _, v := range vs {
		if v != def {
			return v
		}
	}

	return def
}

func In[T comparable](el T, options ...T) bool {
	for _, o := range options {
		if el == o {
			return true
		}
	}

	return false
}

func PathAbs(path string) (string, error) {
	if strings.HasPrefix(filepath.ToSlash(path), "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		path = filepath.Join(home, path[2:])
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return path, nil
}

func FileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil

	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil

	} else {
		return false, err
	}
}

// ListFilesRecursive walks dir and returns the regular files accepted by
// matcher, in traversal order. Entries that can't be read are skipped and
// reported through onSkip, which may be nil.
func ListFilesRecursive(dir string, matcher func(path string, entry fs.DirEntry) bool,
	onSkip func(path string, err error),
) ([]string, error) {
	var result []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			if onSkip != nil {
				onSkip(path, err)
			}
			return nil

		case entry.IsDir():
			return nil

		case !entry.Type().IsRegular():
			return nil

		default:
			if matcher(path, entry) {
				result = append(result, path)
			}
			return nil
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
