package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisStore compartilha o cache entre processos. Todas as chaves ficam sob namespace.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{client: client, namespace: namespace}
}

// NewRedisStoreFromURL conecta ao Redis e verifica a conexão
func NewRedisStoreFromURL(ctx context.Context, rawURL, namespace string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(client, namespace), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) fullKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + keySeparator + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.fullKey(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// DeletePrefix usa SCAN em vez de KEYS e apaga em lotes num pipeline
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	full := s.fullKey(prefix)
	keys := []string{full}

	pattern := escapeGlob(full+keySeparator) + "*"
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return 0, fmt.Errorf("cache scan: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.IntCmd, 0, len(keys)/scanBatch+1)
	for i := 0; i < len(keys); i += scanBatch {
		end := min(i+scanBatch, len(keys))
		cmds = append(cmds, pipe.Del(ctx, keys[i:end]...))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("cache delete: %w", err)
	}

	removed := 0
	for _, cmd := range cmds {
		removed += int(cmd.Val())
	}
	return removed, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
