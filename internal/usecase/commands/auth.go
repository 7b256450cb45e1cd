package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	AccessTokenDuration() time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	logger *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		logger: logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.ParseCredentials(in.Email, in.Password)
	if err != nil {
		// A malformed email or short password can never match an account.
		return nil, ErrInvalidCredentials
	}

	account, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.tokens.GenerateAccessToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID())
	})
	if err != nil {
		// login already succeeded; only the last_login stamp is lost
		a.logger.Warn("failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		Role:        account.Role(),
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.AccessTokenDuration(),
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*user.User, error) {
	account, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same cost and error as a wrong password to prevent user enumeration
			password.DummyCompare(credentials.Password.Value())
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(account.PasswordHash(), credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := account.EnsureCanLogin(); err != nil {
		return nil, ErrUserInactive
	}

	return account, nil
}
