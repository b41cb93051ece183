package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admingate/internal/admin/models"
	"admingate/internal/admin/store"
	dErrors "admingate/pkg/domain-errors"
	"admingate/pkg/secrets"
)

const testUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func (s *ServiceSuite) TestLogin() {
	s.T().Run("happy path - returns issued token", func(t *testing.T) {
		admin := s.newTestAdmin()
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		s.mockJWT.EXPECT().Issue(admin.Email).Return("signed-token", nil)

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: admin.Password,
		}, testUserAgent)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
	})

	s.T().Run("unknown account - no password comparison, no token", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "ghost@test.com").Return(nil, store.ErrNotFound)

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    "ghost@test.com",
			Password: "whatever",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAccountNotFound))
		assert.Nil(t, result)
	})

	s.T().Run("wrong password - invalid credentials", func(t *testing.T) {
		admin := s.newTestAdmin()
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: "wrong",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCredentials))
		assert.Nil(t, result)
	})

	s.T().Run("inactive account with correct password - account inactive", func(t *testing.T) {
		admin := s.newTestAdmin()
		admin.Status = models.StatusInactive
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: admin.Password,
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAccountInactive))
		assert.Nil(t, result)
	})

	s.T().Run("inactive account with wrong password - invalid credentials wins", func(t *testing.T) {
		admin := s.newTestAdmin()
		admin.Status = models.StatusInactive
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: "wrong",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCredentials))
		assert.Nil(t, result)
	})

	s.T().Run("token issuance failure maps to internal", func(t *testing.T) {
		admin := s.newTestAdmin()
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		s.mockJWT.EXPECT().Issue(admin.Email).Return("", errors.New("signing failed"))

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: admin.Password,
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.Nil(t, result)
	})

	s.T().Run("store failure maps to internal", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    "admin@test.com",
			Password: "s3cret",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.Nil(t, result)
	})

	s.T().Run("malformed email rejected before the store is touched", func(t *testing.T) {
		result, err := s.service.Login(context.Background(), &models.LoginRequest{
			Email:    "not-an-email",
			Password: "s3cret",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Nil(t, result)
	})
}

func (s *ServiceSuite) TestLoginBcryptMode() {
	hash, err := secrets.Hash("s3cret")
	require.NoError(s.T(), err)
	admin := s.newTestAdmin()
	admin.Password = hash

	svc := New(s.mockStore, s.mockJWT, WithCredentialMode(CredentialBcrypt))

	s.T().Run("correct password verifies against hash", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		s.mockJWT.EXPECT().Issue(admin.Email).Return("signed-token", nil)

		result, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: "s3cret",
		}, testUserAgent)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
	})

	s.T().Run("wrong password fails against hash", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		result, err := svc.Login(context.Background(), &models.LoginRequest{
			Email:    admin.Email,
			Password: "wrong",
		}, testUserAgent)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCredentials))
		assert.Nil(t, result)
	})
}
