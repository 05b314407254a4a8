package client

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/dmitrijs2005/cobragpt/internal/common"
	"github.com/google/uuid"
)

// loginNamespace scopes the name-based UUIDs handed out on login.
var loginNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://cobragpt.app/users"))

// MockClient simulates the remote auth API: it waits for the configured
// delay and then applies the password policy locally.
type MockClient struct {
	authDelay   time.Duration
	logoutDelay time.Duration
	now         func() time.Time
	newID       func() string
}

// NewMockClient creates a MockClient with the given simulated latencies.
func NewMockClient(authDelay, logoutDelay time.Duration) *MockClient {
	return &MockClient{
		authDelay:   authDelay,
		logoutDelay: logoutDelay,
		now:         time.Now,
		newID:       func() string { return uuid.NewString() },
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Login returns the user for email. Ids are derived from the email, so the
// same address always maps to the same user.
func (c *MockClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := wait(ctx, c.authDelay); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return nil, ErrInvalidCredentials
	}

	return &models.User{
		ID:           uuid.NewSHA1(loginNamespace, []byte(strings.ToLower(email))).String(),
		Email:        email,
		Name:         common.NameFromEmail(email),
		Role:         models.RoleUser,
		Subscription: models.TrialSubscription(c.now(), common.TrialPeriodDays),
	}, nil
}

// Register creates a user with a fresh id. An empty name is derived from the
// email's local part.
func (c *MockClient) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if err := wait(ctx, c.authDelay); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return nil, ErrWeakPassword
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = common.NameFromEmail(email)
	}

	return &models.User{
		ID:           c.newID(),
		Email:        email,
		Name:         name,
		Role:         models.RoleUser,
		Subscription: models.TrialSubscription(c.now(), common.TrialPeriodDays),
	}, nil
}

// Logout waits for the logout delay; there is no server-side session.
func (c *MockClient) Logout(ctx context.Context) error {
	return wait(ctx, c.logoutDelay)
}

func (c *MockClient) Close() error {
	return nil
}
