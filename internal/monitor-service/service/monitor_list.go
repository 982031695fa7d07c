package service

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"sync"
)

// MonitorList is the in-memory registry of monitor definitions shared with
// the scheduler. Status fields are written through Merge; definition fields
// only through Update, both under the same lock.
type MonitorList struct {
	mu    sync.RWMutex
	items []*model.Monitor
	dirty map[string]struct{}
}

func NewMonitorList() *MonitorList {
	return &MonitorList{
		dirty: make(map[string]struct{}),
	}
}

// Merge implements scheduler.Merger.
func (l *MonitorList) Merge(def *model.Monitor, r model.ProbeResult) model.Monitor {
	l.mu.Lock()
	defer l.mu.Unlock()
	def.Apply(r)
	l.dirty[def.ID] = struct{}{}
	return def.Clone()
}

func (l *MonitorList) Snapshot() []model.Monitor {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]model.Monitor, 0, len(l.items))
	for _, m := range l.items {
		res = append(res, m.Clone())
	}
	return res
}

func (l *MonitorList) Get(id string) (model.Monitor, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.indexOf(id); i >= 0 {
		return l.items[i].Clone(), true
	}
	return model.Monitor{}, false
}

// Add registers m and returns the shared pointer, or false when the id is taken.
func (l *MonitorList) Add(m model.Monitor) (*model.Monitor, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.indexOf(m.ID) >= 0 {
		return nil, false
	}
	def := m.Clone()
	l.items = append(l.items, &def)
	return &def, true
}

func (l *MonitorList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.dirty, id)
	return true
}

// Update runs fn on the shared definition under the write lock.
func (l *MonitorList) Update(id string, fn func(m *model.Monitor)) (*model.Monitor, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.indexOf(id)
	if i < 0 {
		return nil, false
	}
	fn(l.items[i])
	return l.items[i], true
}

// Select returns the shared definitions matching pred.
func (l *MonitorList) Select(pred func(m *model.Monitor) bool) []*model.Monitor {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var res []*model.Monitor
	for _, m := range l.items {
		if pred(m) {
			res = append(res, m)
		}
	}
	return res
}

// TakeDirty returns snapshots of monitors whose status changed since the last
// call and clears the set.
func (l *MonitorList) TakeDirty() []model.Monitor {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.dirty) == 0 {
		return nil
	}
	res := make([]model.Monitor, 0, len(l.dirty))
	for _, m := range l.items {
		if _, ok := l.dirty[m.ID]; ok {
			res = append(res, m.Clone())
		}
	}
	l.dirty = make(map[string]struct{})
	return res
}

// MarkDirty re-queues ids for the next TakeDirty, skipping removed monitors.
func (l *MonitorList) MarkDirty(ids ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range ids {
		if l.indexOf(id) >= 0 {
			l.dirty[id] = struct{}{}
		}
	}
}

func (l *MonitorList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

func (l *MonitorList) indexOf(id string) int {
	for i, m := range l.items {
		if m.ID == id {
			return i
		}
	}
	return -1
}
