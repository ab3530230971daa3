package authctx

import (
	"context"
)

// Session is the explicit per-request identity: created by the auth
// middleware after token verification, torn down with the request
// context. Nothing in the system holds a process-wide current user.
type Session struct {
	UID   string
	Email string
	Role  Role
}

type ctxKey string

const sessionKey ctxKey = "session"

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	v := ctx.Value(sessionKey)
	s, ok := v.(*Session)
	return s, ok && s != nil && s.UID != ""
}
