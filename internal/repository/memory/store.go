// Package memory implements the repository interfaces in process memory.
// It backs development runs without POSTGRES_DSN and the service tests.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
)

// Store holds every record behind one lock so that cross-entity rules
// (unique email, job -> company references, cascading deletes) stay atomic.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	users     map[string]domain.User
	companies map[string]domain.Company
	jobs      map[string]domain.Job
	settings  *domain.PlatformSettings
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:       func() time.Time { return time.Now().UTC() },
		users:     make(map[string]domain.User),
		companies: make(map[string]domain.Company),
		jobs:      make(map[string]domain.Job),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository { return &userRepository{s: s} }

// Companies returns the company repository view of the store.
func (s *Store) Companies() repository.CompanyRepository { return &companyRepository{s: s} }

// Jobs returns the job repository view of the store.
func (s *Store) Jobs() repository.JobRepository { return &jobRepository{s: s} }

// Settings returns the settings repository view of the store.
func (s *Store) Settings() repository.SettingsRepository { return &settingsRepository{s: s} }

// stamp returns a timestamp strictly after every earlier one so that
// newest-first ordering is stable even within one clock tick.
func (s *Store) stamp(last time.Time) time.Time {
	t := s.now()
	if !t.After(last) {
		t = last.Add(time.Microsecond)
	}
	return t
}

func newID() string {
	return uuid.NewString()
}

func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func newestFirst[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
}
