package client

import (
	"context"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
)

// Client is the contract of the authentication backend. The session layer
// only talks to this interface, so a real remote API can replace MockClient
// without touching it.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context) error
	Close() error
}
