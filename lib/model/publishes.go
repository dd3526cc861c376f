package model

import (
	"sort"
	"sync"

	"github.com/samber/lo"
)

type Publishes struct {
	mutex sync.RWMutex

	byID map[UUID]*Publish
}

func NewPublishes() *Publishes {
	return &Publishes{
		byID: map[UUID]*Publish{},
	}
}

func (ps *Publishes) AddFromStorage(p *Publish) *Publish {
	ps.byID[p.ID] = p
	return p
}

func (ps *Publishes) Add(p *Publish) *Publish {
	ps.mutex.Lock()
	defer ps.mutex.Unlock()

	ps.byID[p.ID] = p
	return p
}

func (ps *Publishes) Get(id UUID) *Publish {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()

	return ps.byID[id]
}

func (ps *Publishes) List() []*Publish {
	ps.mutex.RLock()
	defer ps.mutex.RUnlock()

	result := lo.Values(ps.byID)

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})

	return result
}
