package repository

// CacheRepository caches serialized sweep results keyed by a parameter
// fingerprint. Implementations may evict entries at any time; callers must
// treat a miss as "recalculate".
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
