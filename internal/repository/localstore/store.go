// Package localstore is a single-file JSON document store standing in for a
// database. All collections live in memory; every mutation rewrites the
// complete snapshot file. A single mutex serializes public operations, so the
// store behaves as a single-writer actor. It must not be shared across
// processes: two processes pointed at one data file would overwrite each
// other's snapshots.
package localstore

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
)

const dbFileName = "database.json"

type database struct {
	Users             []domain.User             `json:"users"`
	JobSeekerProfiles []domain.JobSeekerProfile `json:"jobSeekerProfiles"`
	CompanyProfiles   []domain.CompanyProfile   `json:"companyProfiles"`
	JobPostings       []domain.JobPosting       `json:"jobPostings"`
	JobApplications   []domain.JobApplication   `json:"jobApplications"`
	Messages          []domain.Message          `json:"messages"`
	Sessions          []domain.Session          `json:"sessions"`
}

func emptyDatabase() database {
	return database{
		Users:             []domain.User{},
		JobSeekerProfiles: []domain.JobSeekerProfile{},
		CompanyProfiles:   []domain.CompanyProfile{},
		JobPostings:       []domain.JobPosting{},
		JobApplications:   []domain.JobApplication{},
		Messages:          []domain.Message{},
		Sessions:          []domain.Session{},
	}
}

// Store owns the in-memory collections and their persistence. The per-entity
// repository types in this package all operate through one Store.
type Store struct {
	mu      sync.Mutex
	dataDir string
	dbPath  string
	db      database

	// now is swappable in tests to control timestamps.
	now func() time.Time
}

func New(dataDir string) *Store {
	return &Store{
		dataDir: dataDir,
		dbPath:  filepath.Join(dataDir, dbFileName),
		db:      emptyDatabase(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Init creates the data directory if needed and loads the snapshot file. An
// absent file starts an empty store and writes a fresh snapshot. A file that
// exists but does not parse also starts empty; the previous content is being
// discarded, so this is logged loudly rather than silently swallowed.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory %s: %w", s.dataDir, err)
	}

	raw, err := os.ReadFile(s.dbPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("read database file %s: %w", s.dbPath, err)
		}
		return s.save()
	}

	var db database
	if err := json.Unmarshal(raw, &db); err != nil {
		log.Printf("ERROR [localstore.Init] database file %s is malformed, reinitializing empty store (existing data discarded): %v", s.dbPath, err)
		s.db = emptyDatabase()
		return s.save()
	}

	s.db = db
	s.normalize()
	return nil
}

// normalize replaces nil collections with empty slices so a hand-edited or
// partially written file never leaves a nil slice behind.
func (s *Store) normalize() {
	if s.db.Users == nil {
		s.db.Users = []domain.User{}
	}
	if s.db.JobSeekerProfiles == nil {
		s.db.JobSeekerProfiles = []domain.JobSeekerProfile{}
	}
	if s.db.CompanyProfiles == nil {
		s.db.CompanyProfiles = []domain.CompanyProfile{}
	}
	if s.db.JobPostings == nil {
		s.db.JobPostings = []domain.JobPosting{}
	}
	if s.db.JobApplications == nil {
		s.db.JobApplications = []domain.JobApplication{}
	}
	if s.db.Messages == nil {
		s.db.Messages = []domain.Message{}
	}
	if s.db.Sessions == nil {
		s.db.Sessions = []domain.Session{}
	}
}

// save serializes the whole in-memory state over the snapshot file. Callers
// must hold s.mu. On failure the in-memory state is still authoritative for
// the rest of the process lifetime; the caller surfaces the error.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.db, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal database: %w", err)
	}
	if err := os.WriteFile(s.dbPath, data, 0o644); err != nil {
		return fmt.Errorf("write database file %s: %w", s.dbPath, err)
	}
	return nil
}

// NewRepositories wires one store instance into the repository struct the
// services consume. All repositories share the store's mutex, so operations
// never interleave across entity types either.
func NewRepositories(s *Store) *repository.Repositories {
	return &repository.Repositories{
		User:             NewUserRepository(s),
		JobSeekerProfile: NewJobSeekerProfileRepository(s),
		CompanyProfile:   NewCompanyProfileRepository(s),
		JobPosting:       NewJobPostingRepository(s),
		JobApplication:   NewJobApplicationRepository(s),
		Message:          NewMessageRepository(s),
		Session:          NewSessionRepository(s),
	}
}
