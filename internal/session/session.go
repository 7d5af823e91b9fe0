// Package session persists the gateway's login sessions: the upstream bearer
// token plus the user profile, keyed by a gateway-issued ID. Replaces the
// browser-wide mutable token store of the original client with an explicit
// object populated at login and cleared at logout.
package session

import (
	"context"
	"errors"
	"time"

	"medicare-portal/internal/domain/entity"
)

// ErrNotFound is returned when no session exists for the given ID, including
// when a stored record was corrupt and has been discarded.
var ErrNotFound = errors.New("session not found")

type Store interface {
	Create(ctx context.Context, sess *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
