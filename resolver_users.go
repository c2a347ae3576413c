package directory

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// AuthPayload is the response body for the sign-up and sign-in mutations
type AuthPayload struct {
	Token string `json:"token"`
}

// UserArgs identifies a single user record
type UserArgs struct {
	ID uuid.UUID `json:"id"`
}

// UserResolver exposes the user queries and the auth mutations. Protected
// operations are pre-composed with their guards at construction time; the
// transport invokes the exported handler fields and never re-checks
// authorization itself.
type UserResolver struct {
	auth   Authenticator
	store  Users
	logger Logger

	User   HandlerFunc[UserArgs, *User]
	Users  HandlerFunc[NoArgs, []*User]
	Me     HandlerFunc[NoArgs, *User]
	SignUp HandlerFunc[SignUpInput, AuthPayload]
	SignIn HandlerFunc[SignInInput, AuthPayload]
}

// NewUserResolver wires the handlers behind their guards. SignUp, SignIn,
// and Me stay public; every other operation requires a present identity.
func NewUserResolver(auth Authenticator, store Users) *UserResolver {
	r := &UserResolver{
		auth:   auth,
		store:  store,
		logger: defLogger{},
	}

	r.User = Combine(r.findUser, Authenticated)
	r.Users = Combine(r.listUsers, Authenticated)
	r.Me = r.me
	r.SignUp = r.signUp
	r.SignIn = r.signIn

	return r
}

func (r *UserResolver) WithLogger(logger Logger) *UserResolver {
	r.logger = logger
	return r
}

func (r *UserResolver) signUp(ctx context.Context, input SignUpInput) (AuthPayload, error) {
	token, err := r.auth.SignUp(ctx, input)
	if err != nil {
		return AuthPayload{}, wrapStoreError("signUp", err)
	}
	return AuthPayload{Token: token}, nil
}

func (r *UserResolver) signIn(ctx context.Context, input SignInInput) (AuthPayload, error) {
	token, err := r.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		return AuthPayload{}, wrapStoreError("signIn", err)
	}
	return AuthPayload{Token: token}, nil
}

func (r *UserResolver) findUser(ctx context.Context, args UserArgs) (*User, error) {
	user, err := r.store.GetByID(ctx, args.ID)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, wrapStoreError("user", err)
	}
	return user, nil
}

func (r *UserResolver) listUsers(ctx context.Context, _ NoArgs) ([]*User, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, wrapStoreError("users", err)
	}
	return records, nil
}

// me resolves the acting identity back to its stored credential. An absent
// identity yields no result instead of a guard failure.
func (r *UserResolver) me(ctx context.Context, _ NoArgs) (*User, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, nil
	}

	user, err := r.store.GetByEmail(ctx, identity.Email())
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, wrapStoreError("me", err)
	}
	return user, nil
}

// wrapStoreError tags opaque storage failures with the operation that hit
// them. Domain errors already carry their own category and message and pass
// through untouched.
func wrapStoreError(op string, err error) error {
	if err == nil {
		return nil
	}

	var rich *errors.Error
	if errors.As(err, &rich) {
		return err
	}

	return errors.New(fmt.Sprintf("%s: %v", op, err), errors.CategoryOperation)
}
