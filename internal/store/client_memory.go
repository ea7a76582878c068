package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-offline-sync/models"
)

// memoryRepository is an in-process [LocalRepository]. With a path it
// snapshots its state to a JSON file after every write, which keeps a
// device usable without SQLite (and without cgo).
type memoryRepository struct {
	path     string
	inMemory bool

	mu       sync.RWMutex
	entities map[models.OperationKey]models.Entity
	states   map[models.EntityType]models.SyncState
	session  *models.Session
}

type memoryPersistedState struct {
	Entities []models.Entity                        `json:"entities"`
	States   map[models.EntityType]models.SyncState `json:"states"`
	Session  *models.Session                        `json:"session,omitempty"`
}

// NewMemoryRepository builds a [LocalRepository] kept in memory. An empty
// path or ":memory:" disables persistence; any other path names the JSON
// snapshot file, which is loaded if it exists.
func NewMemoryRepository(path string) (LocalRepository, error) {
	if path == "" {
		path = ":memory:"
	}

	r := &memoryRepository{
		path:     path,
		inMemory: path == ":memory:",
		entities: make(map[models.OperationKey]models.Entity),
		states:   make(map[models.EntityType]models.SyncState),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *memoryRepository) load() error {
	if r.inMemory {
		return nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st memoryPersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	for _, e := range st.Entities {
		r.entities[models.OperationKey{EntityType: e.Type, EntityID: e.ID}] = e
	}
	for t, s := range st.States {
		r.states[t] = s
	}
	r.session = st.Session

	return nil
}

// persist must be called with r.mu held for writing.
func (r *memoryRepository) persist() error {
	if r.inMemory {
		return nil
	}

	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	state := memoryPersistedState{
		Entities: make([]models.Entity, 0, len(r.entities)),
		States:   r.states,
		Session:  r.session,
	}
	for _, e := range r.entities {
		state.Entities = append(state.Entities, e)
	}
	sortEntities(state.Entities)

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	// write-then-rename so a crash never leaves a torn snapshot
	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

func (r *memoryRepository) SaveEntity(_ context.Context, e models.Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entities[entityKey(e.Type, e.ID)] = cloneEntity(e)
	return r.persist()
}

func (r *memoryRepository) GetEntity(_ context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[entityKey(entityType, id)]
	if !ok {
		return models.Entity{}, ErrEntityNotFound
	}
	return cloneEntity(e), nil
}

func (r *memoryRepository) QueryEntities(_ context.Context, filter models.EntityFilter) ([]models.Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := toSet(filter.IDs)
	statuses := make(map[models.SyncStatus]struct{}, len(filter.Statuses))
	for _, s := range filter.Statuses {
		statuses[s] = struct{}{}
	}

	results := make([]models.Entity, 0, 16)
	for _, e := range r.entities {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if len(ids) > 0 {
			if _, ok := ids[e.ID]; !ok {
				continue
			}
		}
		if len(statuses) > 0 {
			if _, ok := statuses[e.SyncStatus]; !ok {
				continue
			}
		}
		if !filter.IncludeDeleted && e.IsDeleted() {
			continue
		}
		results = append(results, cloneEntity(e))
	}

	sortEntities(results)
	if filter.Limit > 0 && uint64(len(results)) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

func (r *memoryRepository) UpdateEntity(_ context.Context, entityType models.EntityType, id string, mutate EntityMutation) (models.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entityKey(entityType, id)
	stored, ok := r.entities[key]
	if !ok {
		return models.Entity{}, ErrEntityNotFound
	}

	e := cloneEntity(stored)
	if err := mutate(&e); err != nil {
		return models.Entity{}, err
	}

	r.entities[key] = cloneEntity(e)
	if err := r.persist(); err != nil {
		r.entities[key] = stored
		return models.Entity{}, err
	}
	return e, nil
}

func (r *memoryRepository) ReplaceEntity(_ context.Context, entityType models.EntityType, id string, replace EntityReplacement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entityKey(entityType, id)
	stored, ok := r.entities[key]

	var current *models.Entity
	if ok {
		e := cloneEntity(stored)
		current = &e
	}

	next, err := replace(current)
	if err != nil {
		return err
	}

	switch {
	case next != nil:
		r.entities[key] = cloneEntity(*next)
	case ok:
		delete(r.entities, key)
	default:
		return nil
	}

	if err = r.persist(); err != nil {
		if ok {
			r.entities[key] = stored
		} else {
			delete(r.entities, key)
		}
		return err
	}
	return nil
}

func (r *memoryRepository) DeleteEntity(_ context.Context, entityType models.EntityType, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entityKey(entityType, id)
	if _, ok := r.entities[key]; !ok {
		return ErrEntityNotFound
	}
	delete(r.entities, key)
	return r.persist()
}

func (r *memoryRepository) CountByStatus(_ context.Context, entityType models.EntityType) (map[models.SyncStatus]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[models.SyncStatus]int)
	for _, e := range r.entities {
		if e.Type == entityType {
			counts[e.SyncStatus]++
		}
	}
	return counts, nil
}

func (r *memoryRepository) GetSyncState(_ context.Context, entityType models.EntityType) (models.SyncState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[entityType]
	if !ok {
		return models.SyncState{EntityType: entityType, Watermark: time.Unix(0, 0).UTC()}, nil
	}
	return state, nil
}

func (r *memoryRepository) SaveSyncState(_ context.Context, state models.SyncState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state.EntityType] = state
	return r.persist()
}

func (r *memoryRepository) SaveSession(_ context.Context, session models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = &session
	return r.persist()
}

func (r *memoryRepository) GetSession(_ context.Context) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *r.session, nil
}

func (r *memoryRepository) DeleteSession(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil
	return r.persist()
}

func (r *memoryRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist()
}

func entityKey(entityType models.EntityType, id string) models.OperationKey {
	return models.OperationKey{EntityType: entityType, EntityID: id}
}

// cloneEntity copies e deeply enough that callers cannot mutate stored
// state through the returned value.
func cloneEntity(e models.Entity) models.Entity {
	e.Fields = e.Fields.Clone()
	e.DeletedAt = cloneTime(e.DeletedAt)
	e.LastSyncedAt = cloneTime(e.LastSyncedAt)
	e.RemoteVersion = cloneTime(e.RemoteVersion)
	return e
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func sortEntities(entities []models.Entity) {
	sort.Slice(entities, func(i, j int) bool {
		if !entities[i].UpdatedAt.Equal(entities[j].UpdatedAt) {
			return entities[i].UpdatedAt.Before(entities[j].UpdatedAt)
		}
		if entities[i].Type != entities[j].Type {
			return entities[i].Type < entities[j].Type
		}
		return strings.Compare(entities[i].ID, entities[j].ID) < 0
	})
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
