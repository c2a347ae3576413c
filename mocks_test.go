package directory_test

import (
	"context"
	"time"

	directory "github.com/goliatone/go-directory"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements directory.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*directory.User, error) {
	args := m.Called(ctx, email)
	if record := args.Get(0); record != nil {
		return record.(*directory.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) Register(ctx context.Context, user *directory.User) (*directory.User, error) {
	args := m.Called(ctx, user)
	if record := args.Get(0); record != nil {
		return record.(*directory.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUsers implements directory.Users
type MockUsers struct {
	MockUserStore
}

func (m *MockUsers) GetByID(ctx context.Context, id uuid.UUID) (*directory.User, error) {
	args := m.Called(ctx, id)
	if record := args.Get(0); record != nil {
		return record.(*directory.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsers) List(ctx context.Context) ([]*directory.User, error) {
	args := m.Called(ctx)
	if records := args.Get(0); records != nil {
		return records.([]*directory.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrganisations implements directory.Organisations
type MockOrganisations struct {
	mock.Mock
}

func (m *MockOrganisations) GetByID(ctx context.Context, id uuid.UUID) (*directory.Organisation, error) {
	args := m.Called(ctx, id)
	if record := args.Get(0); record != nil {
		return record.(*directory.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganisations) List(ctx context.Context) ([]*directory.Organisation, error) {
	args := m.Called(ctx)
	if records := args.Get(0); records != nil {
		return records.([]*directory.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganisations) Create(ctx context.Context, record *directory.Organisation) (*directory.Organisation, error) {
	args := m.Called(ctx, record)
	if created := args.Get(0); created != nil {
		return created.(*directory.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganisations) Update(ctx context.Context, record *directory.Organisation) (*directory.Organisation, error) {
	args := m.Called(ctx, record)
	if updated := args.Get(0); updated != nil {
		return updated.(*directory.Organisation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrganisations) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuthenticator implements directory.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) SignUp(ctx context.Context, input directory.SignUpInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) IdentityFromToken(token string) (directory.Identity, error) {
	args := m.Called(token)
	if identity := args.Get(0); identity != nil {
		return identity.(directory.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockIdentityProvider implements directory.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (directory.Identity, error) {
	args := m.Called(ctx, email, password)
	if identity := args.Get(0); identity != nil {
		return identity.(directory.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByEmail(ctx context.Context, email string) (directory.Identity, error) {
	args := m.Called(ctx, email)
	if identity := args.Get(0); identity != nil {
		return identity.(directory.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAccountRegisterer implements directory.AccountRegisterer
type MockAccountRegisterer struct {
	mock.Mock
}

func (m *MockAccountRegisterer) RegisterAccount(ctx context.Context, name, email, password string) (directory.Identity, error) {
	args := m.Called(ctx, name, email, password)
	if identity := args.Get(0); identity != nil {
		return identity.(directory.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// testIdentity is a plain Identity value for tests
type testIdentity struct {
	id    string
	name  string
	email string
	role  string
}

func (t testIdentity) ID() string    { return t.id }
func (t testIdentity) Name() string  { return t.name }
func (t testIdentity) Email() string { return t.email }
func (t testIdentity) Role() string  { return t.role }

// testLogger swallows everything
type testLogger struct{}

func (testLogger) Debug(string, ...any) {}
func (testLogger) Info(string, ...any)  {}
func (testLogger) Warn(string, ...any)  {}
func (testLogger) Error(string, ...any) {}

func newTestConfig() *directory.AppConfig {
	return &directory.AppConfig{
		SigningKey: "test-signing-key",
		TokenTTL:   24 * time.Hour,
		Issuer:     "go-directory-test",
		ListenAddr: ":0",
	}
}
