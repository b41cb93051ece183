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

func (s *ServiceSuite) TestRegister() {
	s.T().Run("happy path - creates active admin", func(t *testing.T) {
		var created *models.Admin
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, admin *models.Admin) error {
				created = admin
				return nil
			})

		view, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:     "New Admin",
			Email:    "new@test.com",
			Password: "s3cret",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, models.StatusActive, created.Status)
		assert.Equal(t, "s3cret", created.Password)
		assert.False(t, created.ID.IsNil())
		assert.Equal(t, "new@test.com", view.Email)
		assert.Equal(t, string(models.StatusActive), view.Status)
	})

	s.T().Run("trims surrounding whitespace from identity fields", func(t *testing.T) {
		var created *models.Admin
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, admin *models.Admin) error {
				created = admin
				return nil
			})

		_, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:     "  Padded Admin  ",
			Email:    " padded@test.com ",
			Password: " spaced ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Padded Admin", created.Name)
		assert.Equal(t, "padded@test.com", created.Email)
		// Passwords are taken verbatim.
		assert.Equal(t, " spaced ", created.Password)
	})

	s.T().Run("duplicate email maps to conflict", func(t *testing.T) {
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(store.ErrDuplicate)

		view, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:     "Dup Admin",
			Email:    "dup@test.com",
			Password: "s3cret",
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
		assert.Nil(t, view)
	})

	s.T().Run("malformed email rejected before the store is touched", func(t *testing.T) {
		view, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:     "Bad Email",
			Email:    "not-an-email",
			Password: "s3cret",
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Nil(t, view)
	})

	s.T().Run("missing password rejected", func(t *testing.T) {
		view, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:  "No Password",
			Email: "nopass@test.com",
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Nil(t, view)
	})

	s.T().Run("store failure maps to internal", func(t *testing.T) {
		s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		view, err := s.service.Register(context.Background(), &models.RegisterRequest{
			Name:     "Unlucky Admin",
			Email:    "unlucky@test.com",
			Password: "s3cret",
		})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.Nil(t, view)
	})
}

func (s *ServiceSuite) TestRegisterBcryptMode() {
	svc := New(s.mockStore, s.mockJWT, WithCredentialMode(CredentialBcrypt))

	var created *models.Admin
	s.mockStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, admin *models.Admin) error {
			created = admin
			return nil
		})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Hashed Admin",
		Email:    "hashed@test.com",
		Password: "s3cret",
	})
	require.NoError(s.T(), err)
	require.NotNil(s.T(), created)
	assert.NotEqual(s.T(), "s3cret", created.Password)
	assert.NoError(s.T(), secrets.Verify("s3cret", created.Password))
}
