package http

import (
	"context"
	"strconv"
	"strings"

	"shareit-backend/internal/domain"
)

// UserIDHeader carries the caller identity set by the gateway.
const UserIDHeader = "X-Sharer-User-Id"

type userIDKey struct{}

func withUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// GetUserIDFromContext returns the caller identity resolved by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	if !ok {
		return 0, domain.Invalid(UserIDHeader + " header is required")
	}
	return id, nil
}

func parseUserIDHeader(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.Invalid(UserIDHeader + " header is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid("invalid " + UserIDHeader + " header: " + raw)
	}
	return id, nil
}

func parseBearer(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", errUnauthenticated
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}
