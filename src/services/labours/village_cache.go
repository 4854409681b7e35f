package labours

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const villagesCacheKey = "labour:villages"

// VillageCache เก็บรายชื่อหมู่บ้านไว้ใน Redis
// ถ้าไม่มี Redis (dev mode) ทุก method จะไม่ทำอะไร
type VillageCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *charmLog.Logger
}

func NewVillageCache(client *redis.Client, ttl time.Duration, log *charmLog.Logger) *VillageCache {
	return &VillageCache{client: client, ttl: ttl, log: log}
}

func (c *VillageCache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *VillageCache) Get(ctx context.Context) ([]string, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.client.Get(ctx, villagesCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("⚠️ Village cache read failed", "err", err)
		}
		return nil, false
	}

	var villages []string
	if err := json.Unmarshal(raw, &villages); err != nil {
		c.log.Warn("⚠️ Village cache entry is corrupt", "err", err)
		return nil, false
	}
	return villages, true
}

func (c *VillageCache) Set(ctx context.Context, villages []string) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(villages)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, villagesCacheKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("⚠️ Village cache write failed", "err", err)
	}
}

func (c *VillageCache) Invalidate(ctx context.Context) {
	if !c.enabled() {
		return
	}
	if err := c.client.Del(ctx, villagesCacheKey).Err(); err != nil {
		c.log.Warn("⚠️ Village cache invalidation failed", "err", err)
	}
}
