package equipment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/realmforge/catalog-api/internal/entities"
	"github.com/realmforge/catalog-api/internal/errors"
	redisclient "github.com/realmforge/catalog-api/internal/redis"
)

// Cache keys embed the repository type name so entity kinds sharing one
// Redis instance can never collide, and stay stable across restarts.
const (
	cacheKeyPrefix = "equipment.Repository"
	allCacheKey    = cacheKeyPrefix + ":all"
)

func idCacheKey(id int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyPrefix, id)
}

type cachedRepository struct {
	base   Repository
	client redisclient.Client
}

// CachedConfig contains configuration for the cached equipment repository.
type CachedConfig struct {
	Base   Repository
	Client redisclient.Client
}

// Validate validates the CachedConfig.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Base == nil {
		return errors.InvalidArgument("base repository cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewCached decorates an equipment repository with read-through caching.
func NewCached(cfg *CachedConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedRepository{
		base:   cfg.Base,
		client: cfg.Client,
	}, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key := idCacheKey(input.ID)

	raw, err := r.client.Get(ctx, key).Result()
	if err == nil {
		var e entities.Equipment
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			slog.ErrorContext(ctx, "corrupt cache payload",
				"operation", "Get",
				"key", key,
				"error", err.Error())
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
		}
		return &GetOutput{Equipment: &e}, nil
	}
	if err != redis.Nil {
		slog.ErrorContext(ctx, "cache read failed",
			"operation", "Get",
			"equipment_id", input.ID,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	out, err := r.base.Get(ctx, input)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		slog.ErrorContext(ctx, "cached get failed",
			"operation", "Get",
			"equipment_id", input.ID,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	// population is best-effort: a failed write must not fail the read
	if payload, err := json.Marshal(out.Equipment); err == nil {
		if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
			slog.WarnContext(ctx, "cache population failed, serving uncached result",
				"operation", "Get",
				"key", key,
				"error", err.Error())
		}
	}

	return out, nil
}

func (r *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	raw, err := r.client.Get(ctx, allCacheKey).Result()
	if err == nil {
		var equipment []*entities.Equipment
		if err := json.Unmarshal([]byte(raw), &equipment); err != nil {
			slog.ErrorContext(ctx, "corrupt cache payload",
				"operation", "List",
				"key", allCacheKey,
				"error", err.Error())
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
		}
		return &ListOutput{Equipment: equipment}, nil
	}
	if err != redis.Nil {
		slog.ErrorContext(ctx, "cache read failed",
			"operation", "List",
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	out, err := r.base.List(ctx, input)
	if err != nil {
		slog.ErrorContext(ctx, "cached list failed",
			"operation", "List",
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	if payload, err := json.Marshal(out.Equipment); err == nil {
		if err := r.client.Set(ctx, allCacheKey, payload, 0).Err(); err != nil {
			slog.WarnContext(ctx, "cache population failed, serving uncached result",
				"operation", "List",
				"key", allCacheKey,
				"error", err.Error())
		}
	}

	return out, nil
}

func (r *cachedRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	out, err := r.base.Save(ctx, input)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		slog.ErrorContext(ctx, "cached save failed",
			"operation", "Save",
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	payload, err := json.Marshal(out.Equipment)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode cache payload",
			"operation", "Save",
			"equipment_id", out.Equipment.ID,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	key := idCacheKey(out.Equipment.ID)
	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		slog.ErrorContext(ctx, "cache write failed",
			"operation", "Save",
			"key", key,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	// the collection key is invalidated on every save so list reads never
	// miss a freshly written row
	if err := r.client.Del(ctx, allCacheKey).Err(); err != nil {
		slog.ErrorContext(ctx, "cache invalidation failed",
			"operation", "Save",
			"key", allCacheKey,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	return out, nil
}

func (r *cachedRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	out, err := r.base.Delete(ctx, input)
	if err != nil {
		if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
			return nil, err
		}
		slog.ErrorContext(ctx, "cached delete failed",
			"operation", "Delete",
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	key := idCacheKey(input.Equipment.ID)
	if err := r.client.Del(ctx, key, allCacheKey).Err(); err != nil {
		slog.ErrorContext(ctx, "cache invalidation failed",
			"operation", "Delete",
			"key", key,
			"error", err.Error())
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cache operation failed")
	}

	return out, nil
}
