package model

import (
	"sync"
)

// Families keeps family groups in first-seen order.
type Families struct {
	mutex sync.RWMutex
	maxID ID

	list   []*Family
	byName map[string]*Family
}

func NewFamilies() *Families {
	return &Families{
		byName: map[string]*Family{},
	}
}

func (fs *Families) AddFromStorage(family *Family) *Family {
	if family.ID > fs.maxID {
		fs.maxID = family.ID
	}

	fs.list = append(fs.list, family)
	fs.byName[family.Name] = family

	return family
}

func (fs *Families) GetOrCreate(name string) *Family {
	if len(name) == 0 {
		panic("empty family name not supported")
	}

	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	result, ok := fs.byName[name]

	if !ok {
		fs.maxID++
		result = NewFamily(name, fs.maxID)
		fs.list = append(fs.list, result)
		fs.byName[name] = result
	}

	return result
}

func (fs *Families) Get(name string) *Family {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return fs.byName[name]
}

func (fs *Families) List() []*Family {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	result := make([]*Family, len(fs.list))
	copy(result, fs.list)

	return result
}

func (fs *Families) Len() int {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	return len(fs.list)
}

func (fs *Families) TotalFonts() int {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()

	result := 0
	for _, f := range fs.list {
		result += len(f.Fonts)
	}

	return result
}
