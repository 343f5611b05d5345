package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

const (
	searchKeyPrefix = "lyrifi:search:"
	redisTimeout    = 3 * time.Second
)

// Cache stores opaque values with a TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache implements Cache on a redis server.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redis and checks the connection.
func NewRedisCache(ctx context.Context, opts *redis.Options) (*RedisCache, error) {
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// CachedSearcher serves repeated queries from a Cache.
// Cache failures are logged and the query goes to the underlying Searcher.
type CachedSearcher struct {
	next  Searcher
	cache Cache
	ttl   time.Duration
}

var _ Searcher = (*CachedSearcher)(nil)

func NewCachedSearcher(next Searcher, cache Cache, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{next: next, cache: cache, ttl: ttl}
}

func (s *CachedSearcher) Search(ctx context.Context, query string) (*Results, error) {
	if strings.TrimSpace(query) == "" {
		return s.next.Search(ctx, query)
	}
	key := searchKeyPrefix + query
	logger := logrus.WithFields(logrus.Fields{"op": "search-cache", "query": query})

	data, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var cached Results
		decodeErr := json.Unmarshal(data, &cached)
		if decodeErr == nil {
			return &cached, nil
		}
		logger.WithError(decodeErr).Warn("discarding undecodable cache entry")
	case !errors.Is(err, ErrCacheMiss):
		logger.WithError(err).Warn("cache read failed")
	}

	results, err := s.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(results)
	if err != nil {
		return results, nil
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		logger.WithError(err).Warn("cache write failed")
	}
	return results, nil
}
