package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"dairy_admin/internal/storage"
)

const (
	tokenKey = "token"
	adminKey = "user"
)

// Admin is the signed-in identity shown in the profile corner and sent
// along with mutations.
type Admin struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session holds the current identity and bearer token, mirrored into
// blob storage so a restart stays signed in. It is the gateway's token
// source.
type Session struct {
	mu    sync.Mutex
	blob  storage.Blob
	admin *Admin
	token string
}

func New(blob storage.Blob) *Session {
	s := &Session{blob: blob}
	s.load()
	return s
}

func (s *Session) load() {
	ctx := context.Background()
	if data, err := s.blob.Read(ctx, tokenKey); err == nil {
		s.token = string(data)
	} else if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("Warning: failed to load session token: %v", err)
	}
	if data, err := s.blob.Read(ctx, adminKey); err == nil {
		var admin Admin
		if json.Unmarshal(data, &admin) == nil {
			s.admin = &admin
		}
	}
}

// Login stores the identity and token for subsequent requests.
func (s *Session) Login(ctx context.Context, admin Admin, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = &admin
	s.token = token
	if err := s.blob.Write(ctx, tokenKey, []byte(token)); err != nil {
		log.Printf("Warning: failed to persist session token: %v", err)
	}
	if data, err := json.Marshal(admin); err == nil {
		if err := s.blob.Write(ctx, adminKey, data); err != nil {
			log.Printf("Warning: failed to persist session identity: %v", err)
		}
	}
}

// Logout clears the identity and token.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = nil
	s.token = ""
	if err := s.blob.Delete(ctx, tokenKey); err != nil {
		log.Printf("Warning: failed to clear session token: %v", err)
	}
	if err := s.blob.Delete(ctx, adminKey); err != nil {
		log.Printf("Warning: failed to clear session identity: %v", err)
	}
}

// Token implements gateway.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Admin returns the signed-in identity, or nil when signed out.
func (s *Session) Admin() *Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.admin == nil {
		return nil
	}
	cp := *s.admin
	return &cp
}
