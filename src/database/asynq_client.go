package database

import (
	"github.com/hibiken/asynq"
)

// NewAsynqClient สร้าง Asynq client เมื่อมี Redis เท่านั้น
func NewAsynqClient(redisAddr string) *asynq.Client {
	if redisAddr == "" {
		return nil
	}
	return asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
}
