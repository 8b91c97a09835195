package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found")

// Session is the admin session record. Flash messages ride on it so that
// redirects can surface one-shot notices the way the original UI does.
type Session struct {
	Token    string   `json:"token"`
	LoggedIn bool     `json:"logged_in"`
	Flash    []string `json:"flash,omitempty"`
}

// kv is the storage surface the store needs; the redis adapter satisfies
// it, and memoryKV backs deployments without a REDIS_ADDR.
type kv interface {
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
	Del(key string) error
}

type Store struct {
	kv  kv
	ttl time.Duration
}

func NewStore(kv kv, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{kv: kv, ttl: ttl}
}

func NewMemoryStore(ttl time.Duration) *Store {
	return NewStore(newMemoryKV(), ttl)
}

func (s *Store) Create(loggedIn bool) (*Session, error) {
	sess := &Session{
		Token:    uuid.NewString(),
		LoggedIn: loggedIn,
	}
	if err := s.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) Get(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	raw, err := s.kv.Get(keyPrefix + token)
	if err != nil {
		return nil, ErrNotFound
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *Store) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.kv.Set(keyPrefix+sess.Token, raw, s.ttl)
}

func (s *Store) Delete(token string) error {
	return s.kv.Del(keyPrefix + token)
}

func (s *Store) AddFlash(token, msg string) error {
	sess, err := s.Get(token)
	if err != nil {
		return err
	}
	sess.Flash = append(sess.Flash, msg)
	return s.Save(sess)
}

// PopFlash returns the pending flash messages and clears them.
func (s *Store) PopFlash(token string) ([]string, error) {
	sess, err := s.Get(token)
	if err != nil {
		return nil, err
	}
	if len(sess.Flash) == 0 {
		return nil, nil
	}
	flash := sess.Flash
	sess.Flash = nil
	if err := s.Save(sess); err != nil {
		return nil, err
	}
	return flash, nil
}
