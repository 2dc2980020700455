package archive

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize   = 64
	DefaultCacheExpiry = 10 * time.Minute
)

// FileReader reads the raw content of an archive member.
type FileReader interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

type CacheConfig struct {
	Size   int
	Expiry time.Duration
}

// CachedReader keeps recently read member contents in memory. Failed reads are not cached.
type CachedReader struct {
	reader FileReader
	cache  *expirable.LRU[string, []byte]
}

// NewCachedReader wraps reader with an expirable LRU cache.
func NewCachedReader(reader FileReader, config ...CacheConfig) *CachedReader {
	conf := CacheConfig{DefaultCacheSize, DefaultCacheExpiry}
	if len(config) > 0 {
		if config[0].Size > 0 {
			conf.Size = config[0].Size
		}
		if config[0].Expiry > 0 {
			conf.Expiry = config[0].Expiry
		}
	}

	return &CachedReader{
		reader: reader,
		cache:  expirable.NewLRU[string, []byte](conf.Size, nil, conf.Expiry),
	}
}

// ReadFile returns the cached content of name, reading it through on a miss.
func (reader *CachedReader) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if data, ok := reader.cache.Get(name); ok {
		return data, nil
	}

	data, err := reader.reader.ReadFile(ctx, name)
	if err != nil {
		return nil, err
	}

	reader.cache.Add(name, data)
	return data, nil
}

// ReadText returns the content of name decoded as UTF-8 text.
func (reader *CachedReader) ReadText(ctx context.Context, name string) (string, error) {
	data, err := reader.ReadFile(ctx, name)
	if err != nil {
		return "", err
	}
	return DecodeText(data)
}

// Len returns the number of cached members.
func (reader *CachedReader) Len() int {
	return reader.cache.Len()
}
