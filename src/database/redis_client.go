package database

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis เชื่อมต่อ Redis; คืนค่า nil, nil เมื่อไม่ได้ตั้ง REDIS_URI (dev mode)
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",   // ถ้าไม่มีรหัสผ่าน
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
