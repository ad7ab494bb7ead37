package layer

import (
	"github.com/lixenwraith/tile-fighter/model"
)

// Handle addresses a model slot; a stale generation never resolves
// The zero Handle is always invalid
type Handle struct {
	Index uint32
	Gen   uint32
}

type slot struct {
	gen    uint32
	model  *model.Model
	live   bool
	active bool // false until the next refresh of the iteration view
}

// store is an arena of models with a free list
// Removal bumps the slot generation so outstanding handles go stale
type store struct {
	slots []slot
	free  []uint32
}

func newStore() *store {
	return &store{
		slots: make([]slot, 0, 64),
		free:  make([]uint32, 0, 16),
	}
}

func (s *store) insert(m *model.Model) Handle {
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		sl := &s.slots[idx]
		sl.model = m
		sl.live = true
		sl.active = false
		return Handle{Index: idx, Gen: sl.gen}
	}
	s.slots = append(s.slots, slot{gen: 1, model: m, live: true})
	return Handle{Index: uint32(len(s.slots) - 1), Gen: 1}
}

func (s *store) get(h Handle) (*model.Model, bool) {
	if int(h.Index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[h.Index]
	if !sl.live || sl.gen != h.Gen {
		return nil, false
	}
	return sl.model, true
}

func (s *store) remove(h Handle) (*model.Model, bool) {
	m, ok := s.get(h)
	if !ok {
		return nil, false
	}
	sl := &s.slots[h.Index]
	sl.model = nil
	sl.live = false
	sl.active = false
	sl.gen++
	s.free = append(s.free, h.Index)
	return m, true
}

// activate marks pending slots active and returns the handles of all active slots
func (s *store) activate(dst []Handle) []Handle {
	dst = dst[:0]
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		sl.active = true
		dst = append(dst, Handle{Index: uint32(i), Gen: sl.gen})
	}
	return dst
}

func (s *store) count() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].live {
			n++
		}
	}
	return n
}

func (s *store) clear() []*model.Model {
	var out []*model.Model
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		out = append(out, sl.model)
		s.remove(Handle{Index: uint32(i), Gen: sl.gen})
	}
	return out
}

func (s *store) each(fn func(*model.Model)) {
	for i := range s.slots {
		if s.slots[i].live {
			fn(s.slots[i].model)
		}
	}
}
