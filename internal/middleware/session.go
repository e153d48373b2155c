package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// MemberIDKey is the context key for storing the current member ID.
	MemberIDKey contextKey = "member_id"

	// DefaultMemberHeader carries the ID of the member a client is acting as.
	DefaultMemberHeader = "X-Member-Id"
)

// GetMemberID extracts the current member ID from the context.
// Returns empty string if the caller did not select a member.
func GetMemberID(ctx context.Context) string {
	memberID, _ := ctx.Value(MemberIDKey).(string)
	return memberID
}

// WithMemberID returns a copy of ctx carrying memberID.
func WithMemberID(ctx context.Context, memberID string) context.Context {
	return context.WithValue(ctx, MemberIDKey, memberID)
}

// CurrentMember returns an interceptor that records which member the caller is
// acting as, taken from header. This is session selection only; nothing is
// authenticated. Requests without the header proceed with no current member.
func CurrentMember(header string) connect.UnaryInterceptorFunc {
	if header == "" {
		header = DefaultMemberHeader
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if memberID := strings.TrimSpace(req.Header().Get(header)); memberID != "" {
				ctx = WithMemberID(ctx, memberID)
			}
			return next(ctx, req)
		}
	}
}
