package credential

import (
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// token is the single-row table holding the persisted bearer token. It plays
// the part localStorage plays in a browser client: written on successful
// authentication, read on every outbound request, cleared on sign-out or on
// an observed 401/403.
type token struct {
	ID        uint   `gorm:"primaryKey"`
	Value     string `gorm:"column:value"`
	UpdatedAt time.Time
}

// Store persists the credential token in a local sqlite file and keeps an
// in-memory copy so the per-request read never touches disk.
type Store struct {
	mu     sync.Mutex
	db     *gorm.DB
	cached string
}

// Open connects to (or creates) the credential database and loads any token
// persisted by a previous run.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&token{}); err != nil {
		return nil, err
	}

	s := &Store{db: db}
	var row token
	if err := db.First(&row, 1).Error; err == nil {
		s.cached = row.Value
	}
	return s, nil
}

// Save replaces the persisted token.
func (s *Store) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := token{ID: 1, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		logrus.WithError(err).Error("failed to persist credential token")
		return err
	}
	s.cached = value
	return nil
}

// Load returns the current token, or "" when signed out.
func (s *Store) Load() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached
}

// Clear drops the token. The in-memory copy is cleared even if the delete
// fails, so the process is signed out either way.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = ""
	if err := s.db.Delete(&token{}, 1).Error; err != nil {
		logrus.WithError(err).Warn("failed to clear persisted credential token")
	}
}
