package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"card-optimizer/domain"
)

// One hash per install: field = lowercased category, value = JSON preset.
const prefsKey = "card-optimizer:frequency_prefs"

type RedisPreferenceStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisPreferenceStore(addr string) *RedisPreferenceStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisPreferenceStore{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisPreferenceStore) Get(category string) (domain.FrequencyPreset, bool) {
	val, err := r.client.HGet(r.ctx, prefsKey, category).Result()
	if err != nil {
		return domain.FrequencyPreset{}, false
	}
	var preset domain.FrequencyPreset
	if err := json.Unmarshal([]byte(val), &preset); err != nil {
		// A corrupted record reads as absent; the caller falls back
		// to the category default.
		return domain.FrequencyPreset{}, false
	}
	return preset, true
}

func (r *RedisPreferenceStore) Set(category string, preset domain.FrequencyPreset) error {
	data, err := json.Marshal(preset)
	if err != nil {
		return err
	}
	return r.client.HSet(r.ctx, prefsKey, category, string(data)).Err()
}
