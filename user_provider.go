package directory

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/hashid/pkg/hashid"
)

// UserStore is the slice of the users store the auth flows need
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Register(ctx context.Context, user *User) (*User, error)
}

// UserProvider resolves and registers identities against a UserStore. It
// implements IdentityProvider and AccountRegisterer.
type UserProvider struct {
	store     UserStore
	passwords PasswordAuthenticator
	logger    Logger
}

var (
	_ IdentityProvider  = (*UserProvider)(nil)
	_ AccountRegisterer = (*UserProvider)(nil)
)

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:     store,
		passwords: BcryptAuthenticator{},
		logger:    defLogger{},
	}
}

func (u *UserProvider) WithLogger(logger Logger) *UserProvider {
	u.logger = logger
	return u
}

// WithPasswordAuthenticator swaps the hashing strategy
func (u *UserProvider) WithPasswordAuthenticator(p PasswordAuthenticator) *UserProvider {
	if p != nil {
		u.passwords = p
	}
	return u
}

// VerifyIdentity will find the user, compare the password, and return the
// identity. Unknown emails and bad passwords fail with distinct errors.
func (u *UserProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := u.passwords.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidPassword
	}

	return identityFromUser(user), nil
}

// FindIdentityByEmail resolves an identity without checking credentials
func (u *UserProvider) FindIdentityByEmail(ctx context.Context, email string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, email)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return identityFromUser(user), nil
}

// RegisterAccount hashes the password and creates the credential record.
// New self-registrations get the USER role; elevated roles are granted only
// through explicit administrative updates.
func (u *UserProvider) RegisterAccount(ctx context.Context, name, email, password string) (Identity, error) {
	hash, err := u.passwords.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         RoleUser,
	}

	if id, err := hashid.NewUUID(email); err == nil {
		user.ID = id
	}

	created, err := u.store.Register(ctx, user)
	if err != nil {
		return nil, err
	}

	return identityFromUser(created), nil
}

type authIdentity struct {
	id    string
	name  string
	email string
	role  string
}

var _ Identity = authIdentity{}

func (a authIdentity) ID() string {
	return a.id
}

func (a authIdentity) Name() string {
	return a.name
}

func (a authIdentity) Email() string {
	return a.email
}

func (a authIdentity) Role() string {
	return a.role
}

func identityFromUser(user *User) Identity {
	return authIdentity{
		id:    user.ID.String(),
		name:  user.Name,
		email: user.Email,
		role:  string(user.Role),
	}
}

func identityFromClaims(claims AuthClaims) Identity {
	return authIdentity{
		id:    claims.UserID(),
		name:  claims.Name(),
		email: claims.Email(),
		role:  claims.Role(),
	}
}
