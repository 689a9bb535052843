package profile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"simulador-preco/internal/core"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	nextID   int
	profiles map[int]*Profile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:   1,
		profiles: make(map[int]*Profile),
	}
}

// clearDefaultLocked clears the default flag on every profile except id.
// Caller must hold r.mu, which is what makes flag handover atomic here.
func (r *InMemoryRepository) clearDefaultLocked(exceptID int) {
	for _, p := range r.profiles {
		if p.ID != exceptID {
			p.IsDefault = false
		}
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, profile *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.ID = r.nextID
	r.nextID++
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt

	if profile.IsDefault {
		r.clearDefaultLocked(profile.ID)
	}

	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, profile *Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.profiles[profile.ID]
	if !ok {
		return fmt.Errorf("profile %d: %w", profile.ID, core.ErrNotFound)
	}

	if profile.IsDefault {
		r.clearDefaultLocked(profile.ID)
	}

	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = time.Now()

	clone := *profile
	r.profiles[profile.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %d: %w", id, core.ErrNotFound)
	}
	clone := *p
	return &clone, nil
}

func (r *InMemoryRepository) GetDefault(ctx context.Context) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.IsDefault {
			clone := *p
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("no default pricing profile: %w", core.ErrNotFound)
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var profiles []*Profile
	for _, p := range r.profiles {
		clone := *p
		profiles = append(profiles, &clone)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})
	return profiles, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return fmt.Errorf("profile %d: %w", id, core.ErrNotFound)
	}
	delete(r.profiles, id)
	return nil
}
