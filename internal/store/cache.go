package store

import (
	"context"
	"fmt"

	"github.com/abhisek/geomiz/ent"
	"github.com/abhisek/geomiz/ent/checkpointcache"
)

// cacheRepo implements CacheRepo over the checkpoint_cache table.
type cacheRepo struct {
	client *ent.Client
}

func (r *cacheRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := r.client.CheckpointCache.Query().
		Where(checkpointcache.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query cache: %w", err)
	}
	return row.Value, true, nil
}

func (r *cacheRepo) Put(ctx context.Context, key, value string) error {
	existing, err := r.client.CheckpointCache.Query().
		Where(checkpointcache.Key(key)).
		Only(ctx)
	if err == nil {
		_, err = existing.Update().SetValue(value).Save(ctx)
		if err != nil {
			return fmt.Errorf("update cache entry: %w", err)
		}
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("query cache: %w", err)
	}

	_, err = r.client.CheckpointCache.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create cache entry: %w", err)
	}
	return nil
}

func (r *cacheRepo) Purge(ctx context.Context) (int, error) {
	n, err := r.client.CheckpointCache.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	return n, nil
}
