package utils

// context keys
type ctxKey string

const (
	CtxUserIDKey ctxKey = "user_id"
	CtxRoleKey   ctxKey = "role"
)
