package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis はRedisに接続してPingで疎通確認する。
// STORE_DRIVER=redis のときだけ使う（複数プロセスで同じ保存領域を共有したい場合）。
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
