package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"dairy_admin/internal/storage"
)

const (
	blobKey = "activities"
	// maxEntries caps the log; older entries fall off the end.
	maxEntries = 50
)

// Entry is one recorded admin action.
type Entry struct {
	ID      string    `json:"id"`
	Action  string    `json:"action"`
	Entity  string    `json:"entity"`
	Record  string    `json:"record"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Log is the local recent-activity feed, newest first, mirrored into
// blob storage. It backs the dashboard's activity panel whenever the
// remote feed is unreachable.
type Log struct {
	mu      sync.Mutex
	blob    storage.Blob
	entries []Entry
}

func NewLog(blob storage.Blob) *Log {
	l := &Log{blob: blob}
	l.load()
	return l
}

func (l *Log) load() {
	data, err := l.blob.Read(context.Background(), blobKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("Warning: failed to load activity log: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &l.entries); err != nil {
		log.Printf("Warning: corrupt activity log, starting empty: %v", err)
		l.entries = nil
	}
}

// Record prepends one entry and persists the capped log.
func (l *Log) Record(action, entityName, recordID, summary string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := Entry{
		ID:      uuid.NewString(),
		Action:  action,
		Entity:  entityName,
		Record:  recordID,
		Message: fmt.Sprintf("%s %s", action, summary),
		At:      time.Now(),
	}
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[:maxEntries]
	}
	if data, err := json.Marshal(l.entries); err == nil {
		if err := l.blob.Write(context.Background(), blobKey, data); err != nil {
			log.Printf("Warning: failed to persist activity log: %v", err)
		}
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, n)
	copy(out, l.entries[:n])
	return out
}
