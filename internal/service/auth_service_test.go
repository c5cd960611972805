package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:    "test-secret",
			TokenTTLDays: 7,
			BcryptCost:   bcrypt.MinCost,
		},
	}
}

func validInput() RegisterInput {
	return RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "Alice@Example.com",
		Password:  "s3cret!",
		Phone:     "555-0100",
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())

	user, token, exp, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())
	assert.Equal(t, "alice@example.com", user.Email, "email must be lowercased")
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret!", user.PasswordHash)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())

	input := validInput()
	input.Phone = ""
	_, _, _, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())

	_, _, _, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, _, _, err = svc.Register(context.Background(), validInput())
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 409, domainErr.HTTPStatus)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())
	_, _, _, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, _, _, wrongPassword := svc.Login(context.Background(), "alice@example.com", "nope")
	require.Error(t, wrongPassword)

	_, _, _, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "s3cret!")
	require.Error(t, unknownEmail)

	assert.Equal(t,
		apperrors.ToDomainError(wrongPassword).Message,
		apperrors.ToDomainError(unknownEmail).Message,
		"wrong password and unknown email must return the identical error")
	assert.Equal(t, 401, apperrors.ToDomainError(wrongPassword).HTTPStatus)
	assert.Equal(t, 401, apperrors.ToDomainError(unknownEmail).HTTPStatus)
}

func TestLoginRoundTripAndProfile(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())
	registered, _, _, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	user, token, _, err := svc.Login(context.Background(), "ALICE@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)

	profile, err := svc.GetByID(context.Background(), claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, profile.Email)
	assert.Equal(t, registered.FirstName, profile.FirstName)
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newMockUserRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
