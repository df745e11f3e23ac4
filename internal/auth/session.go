package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyFmt = "session:%d"

// SetSession stores the currently valid token for a user. Logging in
// again overwrites it, which invalidates the previous session.
func SetSession(rdb *redis.Client, userID uint, token string, duration time.Duration) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, userID)
	return rdb.Set(ctx, key, token, duration).Err()
}

func GetSession(rdb *redis.Client, userID uint) (string, error) {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, userID)
	return rdb.Get(ctx, key).Result()
}

func DeleteSession(rdb *redis.Client, userID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf(sessionKeyFmt, userID)
	return rdb.Del(ctx, key).Err()
}
