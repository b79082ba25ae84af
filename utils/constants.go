// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 1 * time.Hour

// ResourceCachePrefix is the prefix used for cached resource listings.
const ResourceCachePrefix = "resources:"

// ResourceCacheTTL is the time-to-live for cached resource listings.
const ResourceCacheTTL = 5 * time.Minute
