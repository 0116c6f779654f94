// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 12 * time.Hour

// PortalTokenTTL is the lifetime of client check-in portal tokens.
const PortalTokenTTL = 2 * time.Hour

// Roles recognized by the auth middleware.
const (
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
	RoleClient = "client"
)
