package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"dairy_admin/internal/entity"
	"dairy_admin/internal/storage"
)

// DurableStore mirrors a MemoryStore into a storage blob keyed by the
// entity name. The whole collection is re-serialized after every
// mutation; there are no partial writes. An absent or corrupt blob loads
// as an empty collection, and persistence failures are logged rather
// than surfaced so a storage outage never blocks the panel.
type DurableStore struct {
	mem  *MemoryStore
	blob storage.Blob
	key  string
}

func NewDurableStore(blob storage.Blob, key string) *DurableStore {
	s := &DurableStore{mem: NewMemoryStore(), blob: blob, key: key}
	s.load()
	return s
}

func (s *DurableStore) load() {
	data, err := s.blob.Read(context.Background(), s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Warning: failed to load %s collection: %v", s.key, err)
		}
		return
	}
	var recs []entity.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		log.Printf("Warning: corrupt %s collection, starting empty: %v", s.key, err)
		return
	}
	s.mem.ReplaceAll(recs)
}

func (s *DurableStore) persist() {
	data, err := json.Marshal(s.mem.List())
	if err != nil {
		log.Printf("Warning: failed to serialize %s collection: %v", s.key, err)
		return
	}
	if err := s.blob.Write(context.Background(), s.key, data); err != nil {
		log.Printf("Warning: failed to persist %s collection: %v", s.key, err)
	}
}

func (s *DurableStore) List() []entity.Record { return s.mem.List() }

func (s *DurableStore) Get(id string) (entity.Record, bool) { return s.mem.Get(id) }

func (s *DurableStore) Len() int { return s.mem.Len() }

func (s *DurableStore) Insert(fields map[string]any) entity.Record {
	rec := s.mem.Insert(fields)
	s.persist()
	return rec
}

func (s *DurableStore) InsertRecord(rec entity.Record) entity.Record {
	out := s.mem.InsertRecord(rec)
	s.persist()
	return out
}

func (s *DurableStore) Replace(id string, fields map[string]any) (entity.Record, bool) {
	rec, ok := s.mem.Replace(id, fields)
	if ok {
		s.persist()
	}
	return rec, ok
}

func (s *DurableStore) Remove(id string) bool {
	ok := s.mem.Remove(id)
	if ok {
		s.persist()
	}
	return ok
}

func (s *DurableStore) ReplaceAll(recs []entity.Record) {
	s.mem.ReplaceAll(recs)
	s.persist()
}
