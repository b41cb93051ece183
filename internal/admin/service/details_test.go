package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admingate/internal/admin/store"
	dErrors "admingate/pkg/domain-errors"
)

func (s *ServiceSuite) TestDetails() {
	s.T().Run("happy path - returns view without password", func(t *testing.T) {
		admin := s.newTestAdmin()
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		view, err := s.service.Details(context.Background(), admin.Email)
		require.NoError(t, err)
		assert.Equal(t, admin.ID.String(), view.ID)
		assert.Equal(t, admin.Name, view.Name)
		assert.Equal(t, admin.Email, view.Email)
		assert.Equal(t, "Active", view.Status)
	})

	s.T().Run("account vanished since token was issued", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), "gone@test.com").Return(nil, store.ErrNotFound)

		view, err := s.service.Details(context.Background(), "gone@test.com")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
		assert.Nil(t, view)
	})

	s.T().Run("empty email rejected", func(t *testing.T) {
		view, err := s.service.Details(context.Background(), "")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Nil(t, view)
	})

	s.T().Run("store failure maps to internal", func(t *testing.T) {
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		view, err := s.service.Details(context.Background(), "admin@test.com")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
		assert.Nil(t, view)
	})

	s.T().Run("inactive account still returned", func(t *testing.T) {
		admin := s.newTestAdmin()
		admin.Status = "Inactive"
		s.mockStore.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		view, err := s.service.Details(context.Background(), admin.Email)
		require.NoError(t, err)
		assert.Equal(t, "Inactive", view.Status)
	})
}
