// Package publish provides sink leaves backed by Redis.
//
// Each sink performs exactly one Redis call per consumed value and
// propagates Redis errors unchanged, so a publishing pipeline behaves like
// any other effectful chain: one effect per element, failures stop the
// drive.
package publish

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/pushflow/pkg/push"
)

// Channel returns a sink that publishes each value to a Redis pub/sub
// channel.
func Channel(client redis.UniversalClient, channel string) push.Sink[string] {
	return func(ctx context.Context, v string) error {
		return client.Publish(ctx, channel, v).Err()
	}
}

// Append returns a sink that appends each value to a Redis list. Combined
// with a consumer doing BLPOP this gives a minimal work queue.
func Append(client redis.UniversalClient, key string) push.Sink[string] {
	return func(ctx context.Context, v string) error {
		return client.RPush(ctx, key, v).Err()
	}
}

// Set returns a sink that stores each value under the key derived from it.
// Useful for keeping a latest-value cache of a stream.
func Set(client redis.UniversalClient, key func(v string) string) push.Sink[string] {
	return func(ctx context.Context, v string) error {
		return client.Set(ctx, key(v), v, 0).Err()
	}
}
