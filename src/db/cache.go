package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Report responses are cached here and the whole set is dropped on any
// write, since every mutation can shift the aggregates. Keys are tracked so
// a clear only touches our own entries.
var (
	Cache           *ristretto.Cache
	ReportCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SetReportCache(cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	ReportCacheKeys.Lock()
	ReportCacheKeys.m[cacheKey] = struct{}{}
	ReportCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func GetReportCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

func ClearAllReportCaches() {
	if Cache == nil {
		return
	}
	ReportCacheKeys.Lock()
	for key := range ReportCacheKeys.m {
		Cache.Del(key)
	}
	ReportCacheKeys.m = make(map[string]struct{})
	ReportCacheKeys.Unlock()
}
