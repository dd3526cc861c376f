package model

import (
	"sync"
)

// Archives keeps built archives in build order (= family order).
type Archives struct {
	mutex sync.RWMutex
	maxID ID

	list     []*Archive
	byFamily map[string]*Archive
}

func NewArchives() *Archives {
	return &Archives{
		byFamily: map[string]*Archive{},
	}
}

func (as *Archives) AddFromStorage(archive *Archive) *Archive {
	if archive.ID > as.maxID {
		as.maxID = archive.ID
	}

	as.list = append(as.list, archive)
	as.byFamily[archive.FamilyName] = archive

	return archive
}

func (as *Archives) GetOrCreate(familyName string) *Archive {
	if len(familyName) == 0 {
		panic("empty family name not supported")
	}

	as.mutex.Lock()
	defer as.mutex.Unlock()

	result, ok := as.byFamily[familyName]

	if !ok {
		as.maxID++
		result = NewArchive(familyName, as.maxID)
		as.list = append(as.list, result)
		as.byFamily[familyName] = result
	}

	return result
}

func (as *Archives) Get(familyName string) *Archive {
	as.mutex.RLock()
	defer as.mutex.RUnlock()

	return as.byFamily[familyName]
}

func (as *Archives) List() []*Archive {
	as.mutex.RLock()
	defer as.mutex.RUnlock()

	result := make([]*Archive, len(as.list))
	copy(result, as.list)

	return result
}

func (as *Archives) Len() int {
	as.mutex.RLock()
	defer as.mutex.RUnlock()

	return len(as.list)
}

func (as *Archives) TotalCompressedSize() int64 {
	as.mutex.RLock()
	defer as.mutex.RUnlock()

	var result int64
	for _, a := range as.list {
		result += a.CompressedSize
	}

	return result
}
