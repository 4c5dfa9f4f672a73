package config

import (
	"time"

	"goalquest/utils"
)

type RedisConfig struct {
	URL          string
	StatsTTL     time.Duration
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL:          utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		StatsTTL:     utils.GetEnvAsDuration("STATS_CACHE_TTL", 60*time.Second),
		DialTimeout:  utils.GetEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  utils.GetEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		WriteTimeout: utils.GetEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
	}
}
