package artifacts

import (
	"strings"
	"sync"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// storyPreviewLimit bounds the story text kept on a session for continuity.
// The preview is cosmetic; generation always runs on the full story.
const storyPreviewLimit = 200

// Session is the per-user record the store keeps: the display name, a short
// story preview, and the latest bundle. Bundles are replaced wholesale.
type Session struct {
	Name         string
	StoryPreview string
	Bundle       Bundle
}

// SessionStore is a capacity-bounded cache of session records keyed by the
// opaque session identifier. Eviction is LRU; there is no TTL and nothing
// survives a process restart. All access is linearizable: records are values
// replaced under one lock, so a reader sees the old or the new bundle in
// full, never a mix.
type SessionStore struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, Session]
}

// NewSessionStore builds a store holding at most capacity sessions.
func NewSessionStore(capacity int) (*SessionStore, error) {
	cache, err := lru.New[string, Session](capacity)
	if err != nil {
		return nil, err
	}
	return &SessionStore{cache: cache}, nil
}

// PutBundle stores the latest bundle for a session, overwriting any prior
// bundle without merging.
func (s *SessionStore) PutBundle(sessionID string, bundle Bundle) {
	s.update(sessionID, func(rec *Session) {
		rec.Bundle = bundle
	})
}

// Bundle returns the latest bundle for a session, if any.
func (s *SessionStore) Bundle(sessionID string) (Bundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.cache.Get(sessionID)
	if !ok || rec.Bundle == nil {
		return nil, false
	}
	return rec.Bundle, true
}

// Artifact resolves one artifact from a session's stored bundle. Used by the
// export path when the caller does not supply literal content.
func (s *SessionStore) Artifact(sessionID string, kind Kind) (GeneratedText, bool) {
	bundle, ok := s.Bundle(sessionID)
	if !ok {
		return GeneratedText{}, false
	}
	text, ok := bundle[kind]
	return text, ok
}

// SetUser records the display name for a session, creating the record on
// first use.
func (s *SessionStore) SetUser(sessionID, name string) {
	s.update(sessionID, func(rec *Session) {
		rec.Name = name
	})
}

// User returns the display name recorded for a session, or "".
func (s *SessionStore) User(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, _ := s.cache.Get(sessionID)
	return rec.Name
}

// SetStoryPreview stores a truncated copy of the story for session
// continuity.
func (s *SessionStore) SetStoryPreview(sessionID, story string) {
	preview := strings.TrimSpace(story)
	if utf8.RuneCountInString(preview) > storyPreviewLimit {
		preview = string([]rune(preview)[:storyPreviewLimit])
	}
	s.update(sessionID, func(rec *Session) {
		rec.StoryPreview = preview
	})
}

// StoryPreview returns the stored preview, or "".
func (s *SessionStore) StoryPreview(sessionID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, _ := s.cache.Get(sessionID)
	return rec.StoryPreview
}

// Len reports how many sessions are currently cached.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Len()
}

func (s *SessionStore) update(sessionID string, mutate func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, _ := s.cache.Get(sessionID)
	mutate(&rec)
	s.cache.Add(sessionID, rec)
}
