package cache

import (
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/spend-easy/internal/logger"
)

const keyPrefix = "spend-easy:"

type MemcacheClient struct {
	client *memcache.Client
	ttl    int32
}

type config interface {
	Hosts() []string
	TTL() time.Duration
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, ttl: int32(config.TTL() / time.Second)}, mc.Ping()
}

func formatKey(key string) string {
	return keyPrefix + key
}

func (mc *MemcacheClient) CacheReport(key string, report []byte) error {
	logger.Debug("cache report", zap.String("key", key))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(key),
		Value:      report,
		Expiration: mc.ttl,
	})
}

// GetReport returns memcache.ErrCacheMiss when nothing is cached under key.
func (mc *MemcacheClient) GetReport(key string) ([]byte, error) {
	logger.Debug("get report from cache", zap.String("key", key))
	item, err := mc.client.Get(formatKey(key))
	if err != nil {
		return nil, err
	}
	return item.Value, nil
}

func (mc *MemcacheClient) InvalidateReports(keys []string) error {
	logger.Info("invalidate cache", zap.Strings("keys", keys))

	for _, key := range keys {
		err := mc.client.Delete(formatKey(key))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	return nil
}
