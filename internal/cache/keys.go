package cache

import "strings"

const (
	GlobalKeyPrefix = "studylink"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// UnreadCountKey is the cache key of a user's unread chat message count.
func UnreadCountKey(userID string) string {
	return GenerateCacheKey("chat", "unread_count", userID)
}
