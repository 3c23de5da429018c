package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client for testing. Unit tests skip
// when no local Redis is available; the integration suite covers the same
// paths against a testcontainers instance.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestNewRedisStore_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedisStore should panic with nil redis client")
		}
	}()
	NewRedisStore(nil)
}

func TestRedisStore_SetAndGet(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t))
	ctx := context.Background()

	key := Key("launches", nil)
	body := []byte(`[{"id":"5eb87cd9ffd86e000604b32a"}]`)

	if !store.Set(ctx, key, body, time.Minute) {
		t.Fatal("Set returned false")
	}

	data, ok := store.Get(ctx, key)
	if !ok {
		t.Fatal("Expected cache hit")
	}
	if string(data) != string(body) {
		t.Errorf("Data mismatch: got %s, want %s", data, body)
	}
}

func TestRedisStore_GetMissing(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t))

	if _, ok := store.Get(context.Background(), Key("nonexistent", nil)); ok {
		t.Error("Expected miss for absent key")
	}
}

func TestRedisStore_Expiry(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t))
	ctx := context.Background()

	key := Key("launches", nil)
	store.Set(ctx, key, []byte("v"), time.Second)

	if _, ok := store.Get(ctx, key); !ok {
		t.Fatal("Expected hit before expiry")
	}

	time.Sleep(1100 * time.Millisecond)

	if _, ok := store.Get(ctx, key); ok {
		t.Error("Expected miss after TTL elapsed")
	}
}

func TestRedisStore_NonPositiveTTL(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t))
	ctx := context.Background()

	if store.Set(ctx, "k", []byte("v"), 0) {
		t.Error("Set with zero TTL should return false")
	}
}

func TestRedisStore_FailOpen(t *testing.T) {
	// Point at a port nothing listens on: every operation must degrade
	// without returning an error to the caller.
	client := redis.NewClient(&redis.Options{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := NewRedisStore(client)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "k"); ok {
		t.Error("Get against dead backend must report a miss")
	}
	if store.Set(ctx, "k", []byte("v"), time.Minute) {
		t.Error("Set against dead backend must report failure, not panic")
	}
	if store.Delete(ctx, "k") {
		t.Error("Delete against dead backend must report failure")
	}
	if store.Flush(ctx) {
		t.Error("Flush against dead backend must report failure")
	}
}

func TestRedisStore_DeleteAndFlush(t *testing.T) {
	store := NewRedisStore(setupTestRedis(t))
	ctx := context.Background()

	store.Set(ctx, "a", []byte("1"), time.Minute)
	store.Set(ctx, "b", []byte("2"), time.Minute)

	if !store.Delete(ctx, "a") {
		t.Error("Delete returned false")
	}
	if _, ok := store.Get(ctx, "a"); ok {
		t.Error("Expected miss after delete")
	}

	if !store.Flush(ctx) {
		t.Error("Flush returned false")
	}
	if _, ok := store.Get(ctx, "b"); ok {
		t.Error("Expected miss after flush")
	}
}
