package publish

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/pushflow/internal/testutil"
)

// unreachableClient returns a client pointing at a port nothing listens on,
// so every command fails fast with a connection error.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestChannelPropagatesRedisError(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	sink := Channel(client, "events")
	testutil.AssertError(t, sink(context.Background(), "hello"))
}

func TestAppendPropagatesRedisError(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	sink := Append(client, "queue")
	testutil.AssertError(t, sink(context.Background(), "job-1"))
}

func TestSetPropagatesRedisError(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	sink := Set(client, func(v string) string { return "latest:" + v })
	testutil.AssertError(t, sink(context.Background(), "v1"))
}

func TestSinkHonorsContext(t *testing.T) {
	client := unreachableClient()
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := Channel(client, "events")
	testutil.AssertError(t, sink(ctx, "hello"))
}
