package auth

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillsenselab/authkit/authz"
	"github.com/skillsenselab/authkit/errors"
	"github.com/skillsenselab/authkit/logger"
	"github.com/skillsenselab/authkit/password"
	"github.com/skillsenselab/authkit/store"
	"github.com/skillsenselab/authkit/token"
)

// Session is what a successful register, login, or refresh hands back:
// the caller-facing profile plus a fresh token pair.
type Session struct {
	User   store.PublicProfile `json:"user"`
	Tokens token.Pair          `json:"tokens"`
}

// Service orchestrates account registration, credential verification, and
// token lifecycle on top of the store, hasher, and token service.
type Service struct {
	store    store.Store
	hasher   password.Hasher
	strength *password.StrengthChecker
	tokens   *token.Service
	log      *logger.Logger

	// dummyHash is compared against when the email has no account, so a
	// login probe costs the same whether or not the user exists.
	dummyHash string
}

// NewService wires an auth service. The dummy hash used for timing
// equalization is derived once from a throwaway password.
func NewService(st store.Store, hasher password.Hasher, strength *password.StrengthChecker, tokens *token.Service, log *logger.Logger) (*Service, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("auth: derive dummy hash: %w", err)
	}
	return &Service{
		store:     st,
		hasher:    hasher,
		strength:  strength,
		tokens:    tokens,
		log:       log.WithComponent("auth"),
		dummyHash: dummy,
	}, nil
}

// Register creates an account and signs the new user in. The password is
// checked against the strength rules before anything is persisted; every
// violated rule is reported in one error. A taken email yields
// DUPLICATE_EMAIL whether it is caught by the pre-check or by the unique
// index during insert.
func (s *Service) Register(ctx context.Context, email, plainPassword, fullName string) (*Session, error) {
	if res := s.strength.Check(plainPassword); !res.Valid {
		return nil, errors.WeakPassword(res.Errors)
	}

	// Pre-check for a friendly conflict before paying for the hash. The
	// unique index below still backstops concurrent registrations.
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, errors.DuplicateEmail()
	} else if !stderrors.Is(err, store.ErrNotFound) {
		return nil, s.internal(ctx, "register: email lookup", err)
	}

	hash, err := s.hasher.Hash(plainPassword)
	if err != nil {
		return nil, s.internal(ctx, "register: hash password", err)
	}

	user := &store.User{
		Email:    email,
		FullName: fullName,
		Role:     authz.RoleCustomer,
	}
	created, err := s.store.Create(ctx, user, hash)
	if err != nil {
		if stderrors.Is(err, store.ErrDuplicate) {
			return nil, errors.DuplicateEmail()
		}
		return nil, s.internal(ctx, "register: create user", err)
	}

	pair, err := s.tokens.GeneratePair(identityOf(created))
	if err != nil {
		return nil, s.internal(ctx, "register: issue tokens", err)
	}

	s.log.Info("user registered", logger.Fields("user_id", created.ID.String(), "role", created.Role))
	return &Session{User: created.Public(), Tokens: pair}, nil
}

// Login verifies the email/password pair and issues a fresh token pair.
// Unknown emails and wrong passwords collapse into the same generic
// error; the unknown-email path still runs a hash comparison so the two
// take comparable time.
func (s *Service) Login(ctx context.Context, email, plainPassword string) (*Session, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			_, _ = s.hasher.Compare(plainPassword, s.dummyHash)
			return nil, errors.InvalidCredentials()
		}
		return nil, s.internal(ctx, "login: email lookup", err)
	}

	cred, err := s.store.CredentialByUserID(ctx, user.ID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			_, _ = s.hasher.Compare(plainPassword, s.dummyHash)
			return nil, errors.InvalidCredentials()
		}
		return nil, s.internal(ctx, "login: credential lookup", err)
	}

	match, err := s.hasher.Compare(plainPassword, cred.PasswordHash)
	if err != nil {
		return nil, s.internal(ctx, "login: compare password", err)
	}
	if !match {
		return nil, errors.InvalidCredentials()
	}

	pair, err := s.tokens.GeneratePair(identityOf(user))
	if err != nil {
		return nil, s.internal(ctx, "login: issue tokens", err)
	}

	s.log.Info("user logged in", logger.Fields("user_id", user.ID.String()))
	return &Session{User: user.Public(), Tokens: pair}, nil
}

// RefreshTokens exchanges a valid refresh token for a brand-new pair. The
// claims on the token are trusted as-is; there is no store round trip, so
// a role change lands only after the refresh token expires. Any
// verification failure surfaces as the same generic credentials error.
func (s *Service) RefreshTokens(_ context.Context, refreshToken string) (token.Pair, error) {
	pair, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return token.Pair{}, errors.InvalidCredentials().WithCause(err)
	}
	return pair, nil
}

// Profile returns the caller-facing profile for the user id.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (store.PublicProfile, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return store.PublicProfile{}, errors.NotFound("user")
		}
		return store.PublicProfile{}, s.internal(ctx, "profile: user lookup", err)
	}
	return user.Public(), nil
}

// internal logs the cause server-side and returns a generic error that
// carries nothing about it to the client.
func (s *Service) internal(ctx context.Context, op string, cause error) error {
	s.log.WithContext(ctx).WithError(cause).Error(op)
	return errors.Internal(cause)
}

func identityOf(u *store.User) token.Identity {
	return token.Identity{ID: u.ID.String(), Email: u.Email, Role: u.Role}
}
