package service

import (
	"context"
	"errors"
	"testing"

	"placid-catalog-be/internal/dto"
	"placid-catalog-be/internal/entity"
	"placid-catalog-be/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret"

func newAdminUser(t *testing.T, email, password string) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return entity.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Back Office",
		Role:         entity.RoleAdmin,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := newAdminUser(t, "admin@placid.asia", "s3cret")
	store := &fakeStore{users: []entity.User{user}}
	svc := NewAuthService(newFakeFactory(store), testJwtSecret)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@placid.asia",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Back Office", res.Name)
	assert.Equal(t, "admin", res.Role)
	require.NotEmpty(t, res.Token)

	parsed, err := jwt.Parse(res.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJwtSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.Id.String(), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeFactory(&fakeStore{}), testJwtSecret)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@placid.asia",
		Password: "whatever",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	user := newAdminUser(t, "admin@placid.asia", "s3cret")
	store := &fakeStore{users: []entity.User{user}}
	svc := NewAuthService(newFakeFactory(store), testJwtSecret)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@placid.asia",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
}
