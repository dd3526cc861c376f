package model

import (
	"sync"
)

// FontFiles keeps font files in discovery order. Order is part of the
// contract: grouping and archive member order derive from it.
type FontFiles struct {
	mutex sync.RWMutex
	maxID ID

	list   []*FontFile
	byPath map[string]*FontFile
}

func NewFontFiles() *FontFiles {
	return &FontFiles{
		byPath: map[string]*FontFile{},
	}
}

func (fs *FontFiles) AddFromStorage(file *FontFile) *FontFile {
	if file.ID > fs.maxID {
		fs.maxID = file.ID
	}

	fs.list = append(fs.list, file)
	fs.byPath[file.Path] = file

	return file
}

func (fs *FontFiles) GetOrCreate(path string) *FontFile {
	if len(path) == 0 {
		panic("empty path not supported")
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	result, ok := fs.byPath[path]

	if !ok {
		fs.maxID++
		result = NewFontFile(path, fs.maxID)
		fs.list = append(fs.list, result)
		fs.byPath[path] = result
	}

	return result
}

func (fs *FontFiles) Get(path string) *FontFile {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return fs.byPath[path]
}

func (fs *FontFiles) List() []*FontFile {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	result := make([]*FontFile, len(fs.list))
	copy(result, fs.list)

	return result
}

func (fs *FontFiles) Len() int {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return len(fs.list)
}

func (fs *FontFiles) TotalSize() int64 {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	var result int64
	for _, f := range fs.list {
		result += f.Size
	}

	return result
}
