package store

import (
	"strconv"
	"sync"
	"time"

	"dairy_admin/internal/entity"
)

// Store holds one entity collection in insertion order. Insert assigns
// the id and creation timestamp; Replace swaps only the field map and
// keeps both; Remove reports whether a record was actually removed.
type Store interface {
	List() []entity.Record
	Get(id string) (entity.Record, bool)
	Insert(fields map[string]any) entity.Record
	// InsertRecord adds a record that already carries an id (server
	// assigned, or seed data). Existing ids are replaced in place.
	InsertRecord(rec entity.Record) entity.Record
	Replace(id string, fields map[string]any) (entity.Record, bool)
	Remove(id string) bool
	ReplaceAll(recs []entity.Record)
	Len() int
}

// MemoryStore is the transient backing: process memory only, reset on
// restart. It is also the in-memory half of the durable store.
type MemoryStore struct {
	mu     sync.Mutex
	recs   []entity.Record
	lastID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// nextID issues a millisecond-clock token, bumped by one whenever the
// clock has not advanced past the previous token so that rapid creates
// within one process never collide.
func (s *MemoryStore) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}

func (s *MemoryStore) List() []entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Record, len(s.recs))
	for i, r := range s.recs {
		out[i] = r.Clone()
	}
	return out
}

func (s *MemoryStore) Get(id string) (entity.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.recs {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return entity.Record{}, false
}

func (s *MemoryStore) Insert(fields map[string]any) entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := entity.Record{
		ID:        s.nextID(),
		CreatedAt: time.Now(),
		Fields:    fields,
	}
	s.recs = append(s.recs, rec)
	return rec.Clone()
}

// bumpIDClock keeps the id clock ahead of numeric ids that arrived from
// outside (seed data, persisted collections), so later Inserts cannot
// reissue one. Callers must hold the lock.
func (s *MemoryStore) bumpIDClock(id string) {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > s.lastID {
		s.lastID = n
	}
}

func (s *MemoryStore) InsertRecord(rec entity.Record) entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.bumpIDClock(rec.ID)
	for i, existing := range s.recs {
		if existing.ID == rec.ID {
			s.recs[i] = rec
			return rec.Clone()
		}
	}
	s.recs = append(s.recs, rec)
	return rec.Clone()
}

func (s *MemoryStore) Replace(id string, fields map[string]any) (entity.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recs {
		if r.ID == id {
			updated := entity.Record{ID: r.ID, CreatedAt: r.CreatedAt, Fields: fields}
			s.recs[i] = updated
			return updated.Clone(), true
		}
	}
	return entity.Record{}, false
}

func (s *MemoryStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recs {
		if r.ID == id {
			s.recs = append(s.recs[:i], s.recs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryStore) ReplaceAll(recs []entity.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = make([]entity.Record, len(recs))
	for i, r := range recs {
		s.recs[i] = r.Clone()
		s.bumpIDClock(r.ID)
	}
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}
