package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix      = "user:%d"
	communityKeyPrefix = "community:%d"
	communityListKey   = "communities:all"
	tokenBlacklistKey  = "blacklist:%s"
)

const (
	UserTTL          = 5 * time.Minute
	CommunityTTL     = 10 * time.Minute
	CommunityListTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func CommunityKey(communityID uint) string {
	return fmt.Sprintf(communityKeyPrefix, communityID)
}

func CommunityListKey() string {
	return communityListKey
}

func TokenBlacklistKey(jti string) string {
	return fmt.Sprintf(tokenBlacklistKey, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateCommunity(ctx context.Context, communityID uint) {
	Invalidate(ctx, CommunityKey(communityID))
	Invalidate(ctx, CommunityListKey())
}
