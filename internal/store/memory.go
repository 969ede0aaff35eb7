package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-targeter/internal/types"
)

// Memory is an in-process Store for tests and single-shot CLI runs. Records
// are stored as marshaled JSON so callers cannot mutate stored state through
// shared pointers.
type Memory struct {
	mu       sync.Mutex
	profiles map[uuid.UUID][]byte
	runs     map[uuid.UUID]memoryRun
}

type memoryRun struct {
	profileID uuid.UUID
	jobTitle  string
	content   []byte
	createdAt time.Time
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		profiles: make(map[uuid.UUID][]byte),
		runs:     make(map[uuid.UUID]memoryRun),
	}
}

// Close is a no-op for the in-memory store.
func (s *Memory) Close() {}

// SaveProfile stores a canonical profile and returns its record ID.
func (s *Memory) SaveProfile(_ context.Context, profile *types.CanonicalProfile) (uuid.UUID, error) {
	content, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.profiles[id] = content
	return id, nil
}

// GetProfile retrieves a canonical profile by record ID.
func (s *Memory) GetProfile(_ context.Context, id uuid.UUID) (*types.CanonicalProfile, error) {
	s.mu.Lock()
	content, ok := s.profiles[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var profile types.CanonicalProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	return &profile, nil
}

// SaveSelectionRun stores a selection result for a profile and returns the
// run ID.
func (s *Memory) SaveSelectionRun(_ context.Context, profileID uuid.UUID, jobTitle string, result *types.TargetAwareProfile) (uuid.UUID, error) {
	content, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal selection result: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.runs[id] = memoryRun{
		profileID: profileID,
		jobTitle:  jobTitle,
		content:   content,
		createdAt: time.Now(),
	}
	return id, nil
}

// GetSelectionRun retrieves a selection run by ID.
func (s *Memory) GetSelectionRun(_ context.Context, id uuid.UUID) (*SelectionRun, error) {
	s.mu.Lock()
	stored, ok := s.runs[id]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return s.decodeRun(id, stored)
}

// ListSelectionRuns retrieves all selection runs for a profile, newest first.
func (s *Memory) ListSelectionRuns(_ context.Context, profileID uuid.UUID) ([]SelectionRun, error) {
	s.mu.Lock()
	matching := make(map[uuid.UUID]memoryRun)
	for id, stored := range s.runs {
		if stored.profileID == profileID {
			matching[id] = stored
		}
	}
	s.mu.Unlock()

	var runs []SelectionRun
	for id, stored := range matching {
		run, err := s.decodeRun(id, stored)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	return runs, nil
}

func (s *Memory) decodeRun(id uuid.UUID, stored memoryRun) (*SelectionRun, error) {
	run := SelectionRun{
		ID:        id,
		ProfileID: stored.profileID,
		JobTitle:  stored.jobTitle,
		CreatedAt: stored.createdAt,
	}
	if err := json.Unmarshal(stored.content, &run.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal selection run %s: %w", id, err)
	}
	return &run, nil
}
