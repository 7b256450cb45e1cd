//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/password"
	"staybook/internal/usecase/commands"
	"staybook/tests/common/builder"
	commandsmock "staybook/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	m        *txMocks
	tokens   *commandsmock.MockTokenIssuer
	commands commands.AuthCommands
	hash     string
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupSubTest() {
	ctrl := gomock.NewController(s.T())
	s.m = newTxMocks(ctrl)
	s.tokens = commandsmock.NewMockTokenIssuer(ctrl)
	s.commands = commands.NewAuthCommands(s.m.uow, s.tokens, discardLogger())
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	in := builder.NewAuthBuilder().BuildInput()

	s.Run("valid credentials issue a token and stamp the login", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "host@example.com").Return(account, nil)
		s.tokens.EXPECT().GenerateAccessToken(account.ID(), user.RoleOperator).Return("signed-token", nil)
		s.tokens.EXPECT().AccessTokenDuration().Return(time.Hour)
		s.m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), account.ID()).Return(nil)

		result, err := s.commands.Login(ctx, in)

		s.Require().NoError(err)
		s.Equal(account.ID(), result.UserID)
		s.Equal(user.RoleOperator, result.Role)
		s.Equal("signed-token", result.AccessToken)
		s.Equal(time.Hour, result.ExpiresIn)
	})

	s.Run("email lookup is case-insensitive", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "host@example.com").Return(account, nil)
		s.tokens.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
		s.tokens.EXPECT().AccessTokenDuration().Return(time.Hour)
		s.m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.Login(ctx, commands.LoginInput{Email: "Host@Example.com", Password: "password123"})
		s.NoError(err)
	})

	s.Run("last login failure does not fail the login", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(account, nil)
		s.tokens.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Return("signed-token", nil)
		s.tokens.EXPECT().AccessTokenDuration().Return(time.Hour)
		s.m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := s.commands.Login(ctx, in)
		s.NoError(err)
	})

	s.Run("wrong password", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(account, nil)

		_, err := s.commands.Login(ctx, commands.LoginInput{Email: in.Email, Password: "wrong-password"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("unknown email looks like a wrong password", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.commands.Login(ctx, in)
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("malformed input never reaches storage", func() {
		_, err := s.commands.Login(ctx, commands.LoginInput{Email: "not-an-email", Password: "password123"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)

		_, err = s.commands.Login(ctx, commands.LoginInput{Email: in.Email, Password: "short"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("inactive account", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).AsInactive().MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(account, nil)

		_, err := s.commands.Login(ctx, in)
		s.ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("storage failure", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to find user", errors.New("connection reset")))

		_, err := s.commands.Login(ctx, in)
		s.True(errs.Is(err, commands.ErrAuthenticationFailed))
	})

	s.Run("token signing failure", func() {
		account := builder.NewUserBuilder().WithPasswordHash(s.hash).MustBuildDomain()
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(account, nil)
		s.tokens.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Return("", errors.New("bad key"))

		_, err := s.commands.Login(ctx, in)
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}
