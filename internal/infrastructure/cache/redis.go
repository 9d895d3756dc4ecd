package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
)

const (
	fieldText        = "text"
	fieldGeneratedAt = "generated_at"
	fieldGeneration  = "generation"
)

// resetScript bumps the generation and clears the entry in one step
var resetScript = redis.NewScript(`
local gen = redis.call('HINCRBY', KEYS[1], 'generation', 1)
redis.call('HSET', KEYS[1], 'text', ARGV[1], 'generated_at', '0')
return gen
`)

// saveIfCurrentScript writes the entry only while the generation is unchanged
var saveIfCurrentScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'generation') or '0'
if cur ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[1], 'text', ARGV[2], 'generated_at', ARGV[3])
return 1
`)

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return c, nil
}

// RedisStore keeps the entry in a Redis hash. Writes go through Lua scripts,
// so a reader sees either the old or the new entry and a stale write cannot
// land after a Reset.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a store backed by the given client and key
func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

var _ Store = (*RedisStore)(nil)

// Load reads the entry; a missing key yields the zero entry
func (r *RedisStore) Load(ctx context.Context) (Entry, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Entry{}, err
	}
	if len(fields) == 0 {
		return Entry{}, nil
	}

	entry := Entry{Text: fields[fieldText]}
	if raw := fields[fieldGeneratedAt]; raw != "" {
		nanos, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("redis: corrupt %s field: %w", fieldGeneratedAt, err)
		}
		if nanos != 0 {
			entry.GeneratedAt = time.Unix(0, nanos).UTC()
		}
	}
	if raw := fields[fieldGeneration]; raw != "" {
		gen, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("redis: corrupt %s field: %w", fieldGeneration, err)
		}
		entry.Generation = gen
	}
	return entry, nil
}

// Reset clears the entry and bumps the generation
func (r *RedisStore) Reset(ctx context.Context, text string) (uint64, error) {
	gen, err := resetScript.Run(ctx, r.client, []string{r.key}, text).Int64()
	if err != nil {
		return 0, err
	}
	return uint64(gen), nil
}

// SaveIfCurrent writes the entry unless a Reset happened since entry.Generation was read
func (r *RedisStore) SaveIfCurrent(ctx context.Context, entry Entry) (bool, error) {
	var nanos int64
	if !entry.GeneratedAt.IsZero() {
		nanos = entry.GeneratedAt.UnixNano()
	}
	stored, err := saveIfCurrentScript.Run(ctx, r.client, []string{r.key},
		strconv.FormatUint(entry.Generation, 10),
		entry.Text,
		strconv.FormatInt(nanos, 10),
	).Int64()
	if err != nil {
		return false, err
	}
	return stored == 1, nil
}
