package ports

import "context"

// SessionStorage is the durable client-local store behind the session:
// two independently keyed slots, one for the serialized user record and
// one for the raw token string. Save writes both together, Clear removes
// both together. Load returns empty strings when either slot is missing.
type SessionStorage interface {
	Save(ctx context.Context, userJSON, token string) error
	Load(ctx context.Context) (userJSON, token string, err error)
	Clear(ctx context.Context) error
}
