// Package session holds the authenticated user's bearer token and profile.
//
// The session is an explicit object injected into the upstream client and
// the controllers; there is no ambient global state. It is persisted in a
// small local sqlite database under fixed keys so a restart does not log the
// user out, mirroring what a browser client keeps in local storage.
package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/assistente-financeiro/painel/internal/models"
)

// Storage keys. These match the keys the web client uses so that tooling
// operating on either store finds the same names.
const (
	tokenKey = "assistente_financeiro_token"
	userKey  = "assistente_financeiro_usuario"
)

// Session is the authenticated state for upstream calls.
type Session struct {
	Token string
	User  models.User
}

// Authenticated reports whether a bearer token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// record is one key/value row of the persisted store.
type record struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

// Store persists the current session.
type Store struct {
	db *gorm.DB

	mu      sync.RWMutex
	current Session
}

// Open opens the session store at path and loads the persisted session, if
// any.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(record{}); err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.load(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) load() error {
	var token, user record

	err := s.db.First(&token, "key = ?", tokenKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	session := Session{Token: token.Value}

	err = s.db.First(&user, "key = ?", userKey).Error
	if err == nil {
		// A corrupted profile is not fatal, the token alone is enough
		// to stay signed in.
		if err := json.Unmarshal([]byte(user.Value), &session.User); err != nil {
			log.Warn().Err(err).Msg("session: discarding unreadable user profile")
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return nil
}

// Current returns the active session. The zero session means signed out.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save replaces the active session and persists it.
func (s *Store) Save(session Session) error {
	profile, err := json.Marshal(session.User)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&record{Key: tokenKey, Value: session.Token}).Error; err != nil {
			return err
		}
		return tx.Save(&record{Key: userKey, Value: string(profile)}).Error
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return nil
}

// UpdateUser replaces the stored profile while keeping the token.
func (s *Store) UpdateUser(user models.User) error {
	s.mu.RLock()
	session := s.current
	s.mu.RUnlock()

	session.User = user
	return s.Save(session)
}

// Invalidate tears the session down. It is called on logout and whenever
// the upstream answers 401.
func (s *Store) Invalidate() error {
	err := s.db.Delete(&record{}, "key IN ?", []string{tokenKey, userKey}).Error
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()

	return nil
}
