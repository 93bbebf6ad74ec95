package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"league-backend/internal/leagues/domain/repository"
	apperrors "league-backend/internal/shared/errors"
)

// fakeStore is an in-memory repository.Store. Documents keep insertion
// order per path, IDs are deterministic and the server-timestamp clock
// is controllable.
type fakeStore struct {
	mu     sync.Mutex
	docs   map[string][]*fakeDoc
	nextID int
	now    time.Time

	addErr    error
	getAllErr error
	getErr    error

	addCalls    int
	updateCalls int
	deleteCalls int
	getCalls    int
}

type fakeDoc struct {
	id   string
	data map[string]interface{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs: make(map[string][]*fakeDoc),
		now:  time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) Add(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCalls++
	if s.addErr != nil {
		return "", s.addErr
	}

	s.nextID++
	doc := &fakeDoc{
		id:   fmt.Sprintf("id-%d", s.nextID),
		data: make(map[string]interface{}, len(data)),
	}
	for key, value := range data {
		if repository.IsServerTimestamp(value) {
			doc.data[key] = s.now
		} else {
			doc.data[key] = value
		}
	}
	s.docs[path] = append(s.docs[path], doc)
	return doc.id, nil
}

func (s *fakeStore) GetAll(ctx context.Context, path string) ([]repository.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getAllErr != nil {
		return nil, s.getAllErr
	}

	snapshots := make([]repository.Snapshot, 0, len(s.docs[path]))
	for _, doc := range s.docs[path] {
		snapshots = append(snapshots, repository.Snapshot{ID: doc.id, Exists: true, Data: doc.data})
	}
	return snapshots, nil
}

func (s *fakeStore) GetByID(ctx context.Context, path, id string) (repository.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return repository.Snapshot{}, s.getErr
	}

	for _, doc := range s.docs[path] {
		if doc.id == id {
			return repository.Snapshot{ID: doc.id, Exists: true, Data: doc.data}, nil
		}
	}
	return repository.Snapshot{ID: id, Exists: false}, nil
}

func (s *fakeStore) UpdateByID(ctx context.Context, path, id string, patch map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls++

	for _, doc := range s.docs[path] {
		if doc.id == id {
			for key, value := range patch {
				if repository.IsServerTimestamp(value) {
					doc.data[key] = s.now
				} else {
					doc.data[key] = value
				}
			}
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("document %s/%s", path, id))
}

func (s *fakeStore) DeleteByID(ctx context.Context, path, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteCalls++

	docs := s.docs[path]
	for i, doc := range docs {
		if doc.id == id {
			s.docs[path] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeTeamNameCache is a map-backed repository.TeamNameCache recording
// hits and writes.
type fakeTeamNameCache struct {
	mu     sync.Mutex
	values map[string]string
	hits   int
	sets   int
}

func newFakeTeamNameCache() *fakeTeamNameCache {
	return &fakeTeamNameCache{values: make(map[string]string)}
}

func (c *fakeTeamNameCache) Get(ctx context.Context, leagueID, teamID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	name, ok := c.values[leagueID+"/"+teamID]
	if ok {
		c.hits++
	}
	return name, ok
}

func (c *fakeTeamNameCache) Set(ctx context.Context, leagueID, teamID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.values[leagueID+"/"+teamID] = name
}
