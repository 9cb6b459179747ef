// Package cache provides a short-lived Redis cache for resolved availability.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotCache stores the resolved open-slot list per (doctor, day). Entries are
// short-lived: availability tolerates bounded staleness, and the booking path
// never consults the cache. A nil *SlotCache disables caching entirely.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a SlotCache around an existing Redis client.
func New(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{client: client, ttl: ttl}
}

// NewFromURL connects to Redis using a redis:// URL.
func NewFromURL(url string, ttl time.Duration) (*SlotCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return New(redis.NewClient(opts), ttl), nil
}

func key(doctorID uuid.UUID, day time.Time) string {
	return "openslots:" + doctorID.String() + ":" + day.UTC().Format("2006-01-02")
}

// GetOpenSlots returns the cached open slots for a doctor/day, or ok=false on
// a miss. Redis failures are treated as misses.
func (c *SlotCache) GetOpenSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]time.Time, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, key(doctorID, day)).Bytes()
	if err != nil {
		return nil, false
	}
	var slots []time.Time
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

// SetOpenSlots caches the open slots for a doctor/day. An empty list is cached
// too: "fully booked" is as valid an answer as any.
func (c *SlotCache) SetOpenSlots(ctx context.Context, doctorID uuid.UUID, day time.Time, slots []time.Time) {
	if c == nil {
		return
	}
	if slots == nil {
		slots = []time.Time{}
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(doctorID, day), raw, c.ttl)
}

// Invalidate drops the cached entry for a doctor/day. Called after a
// successful booking so the next availability read reflects it.
func (c *SlotCache) Invalidate(ctx context.Context, doctorID uuid.UUID, day time.Time) {
	if c == nil {
		return
	}
	c.client.Del(ctx, key(doctorID, day))
}
