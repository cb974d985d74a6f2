package filestore

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"resource-manager-backend/internal/logger"
	"resource-manager-backend/internal/repository"
)

// Store keeps the whole dataset in one JSON file. Every committed change
// rewrites the file through a temp file and a rename.
type Store struct {
	path string
	now  func() time.Time

	mu  sync.Mutex
	doc *document
}

// Open loads the dataset at path. A missing or unreadable document is
// treated as an empty dataset.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	s := &Store{path: path, now: time.Now}
	s.doc = s.load()
	return s, nil
}

func (s *Store) load() *document {
	log := logger.New().WithField("path", s.path)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.WithError(err).Warn("Could not read data file, starting with an empty dataset")
		}
		return emptyDocument()
	}

	doc := emptyDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		log.WithError(err).Warn("Data file is corrupt, starting with an empty dataset")
		return emptyDocument()
	}
	if doc.TeamMembers == nil {
		doc.TeamMembers = []memberDoc{}
	}
	if doc.Projects == nil {
		doc.Projects = []*projectDoc{}
	}
	return doc
}

func (s *Store) save(doc *document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// commit applies fn to a copy of the dataset and publishes the copy only
// when fn succeeds and the file was written. Caller holds mu.
func (s *Store) commit(fn func(doc *document) error) error {
	work, err := s.doc.clone()
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	if err := s.save(work); err != nil {
		return err
	}
	s.doc = work
	return nil
}

func (s *Store) session() *session {
	return &session{store: s}
}

func (s *Store) Members() repository.TeamMemberRepositoryInterface {
	return s.session().Members()
}

func (s *Store) Projects() repository.ProjectRepositoryInterface {
	return s.session().Projects()
}

func (s *Store) Tasks() repository.TaskRepositoryInterface {
	return s.session().Tasks()
}

// Transaction runs fn against a private copy of the dataset and writes it
// out only if fn succeeds.
func (s *Store) Transaction(fn func(tx repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(func(doc *document) error {
		return fn(&session{store: s, tx: doc})
	})
}

// View runs fn against a copy of the committed dataset
func (s *Store) View(fn func(tx repository.Store) error) error {
	s.mu.Lock()
	doc, err := s.doc.clone()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(&session{store: s, tx: doc, readOnly: true})
}

// Purge empties the dataset
func (s *Store) Purge() error {
	return s.session().Purge()
}

// Ping checks that the data file's directory is usable
func (s *Store) Ping() error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

// session is what repositories act on. Outside a transaction every write
// commits on its own; inside one, writes go to the transaction's copy.
type session struct {
	store    *Store
	tx       *document
	readOnly bool
}

var errReadOnly = errors.New("write attempted in a read-only view")

func (s *session) read(fn func(doc *document) error) error {
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(s.store.doc)
}

func (s *session) write(fn func(doc *document) error) error {
	if s.readOnly {
		return errReadOnly
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.commit(fn)
}

func (s *session) now() time.Time {
	return s.store.now().UTC()
}

func (s *session) Members() repository.TeamMemberRepositoryInterface {
	return &memberRepository{session: s}
}

func (s *session) Projects() repository.ProjectRepositoryInterface {
	return &projectRepository{session: s}
}

func (s *session) Tasks() repository.TaskRepositoryInterface {
	return &taskRepository{session: s}
}

// Transaction inside a session joins the enclosing transaction
func (s *session) Transaction(fn func(tx repository.Store) error) error {
	if s.tx != nil {
		if s.readOnly {
			return errReadOnly
		}
		return fn(s)
	}
	return s.store.Transaction(fn)
}

func (s *session) View(fn func(tx repository.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}
	return s.store.View(fn)
}

func (s *session) Purge() error {
	return s.write(func(doc *document) error {
		doc.TeamMembers = []memberDoc{}
		doc.Projects = []*projectDoc{}
		return nil
	})
}

func (s *session) Ping() error {
	return s.store.Ping()
}

func sortedImages(images []imageDoc) []imageDoc {
	out := slices.Clone(images)
	slices.SortStableFunc(out, func(a, b imageDoc) int {
		return cmp.Or(cmp.Compare(a.DisplayOrder, b.DisplayOrder), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func sortedTasks(tasks []*taskDoc) []*taskDoc {
	out := slices.Clone(tasks)
	slices.SortStableFunc(out, func(a, b *taskDoc) int {
		return cmp.Or(cmp.Compare(a.DisplayOrder, b.DisplayOrder), cmp.Compare(a.ID, b.ID))
	})
	return out
}

func sortedSubtasks(subtasks []subtaskDoc) []subtaskDoc {
	out := slices.Clone(subtasks)
	slices.SortStableFunc(out, func(a, b subtaskDoc) int {
		return cmp.Or(cmp.Compare(a.DisplayOrder, b.DisplayOrder), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// exportOrder sorts starred projects first, then newest first, then by id descending
func exportOrder(a, b *projectDoc) int {
	if a.Starred != b.Starred {
		if a.Starred {
			return -1
		}
		return 1
	}
	return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
}
