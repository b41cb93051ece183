package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"admingate/internal/admin/models"
	id "admingate/pkg/domain"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	admin, err := models.NewAdmin("Jane Doe", "jane.doe@example.com", "p1")
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.Create(context.Background(), admin))

	foundByEmail, err := s.store.FindByEmail(context.Background(), admin.Email)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), admin, foundByEmail)

	foundByID, err := s.store.FindByID(context.Background(), admin.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), admin, foundByID)
}

func (s *InMemoryStoreSuite) TestFindNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(s.T(), err, ErrNotFound)

	_, err = s.store.FindByID(context.Background(), id.NewAdminID())
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *InMemoryStoreSuite) TestEmailUniqueness() {
	first, err := models.NewAdmin("First", "dup@example.com", "p1")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Create(context.Background(), first))

	second, err := models.NewAdmin("Second", "dup@example.com", "p2")
	require.NoError(s.T(), err)
	assert.ErrorIs(s.T(), s.store.Create(context.Background(), second), ErrDuplicate)

	// The original record is untouched.
	found, err := s.store.FindByEmail(context.Background(), "dup@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "First", found.Name)
}

func (s *InMemoryStoreSuite) TestEmailMatchIsCaseSensitive() {
	admin, err := models.NewAdmin("Jane", "Jane@Example.com", "p1")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Create(context.Background(), admin))

	_, err = s.store.FindByEmail(context.Background(), "jane@example.com")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *InMemoryStoreSuite) TestReturnsCopies() {
	admin, err := models.NewAdmin("Jane", "jane@example.com", "p1")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Create(context.Background(), admin))

	found, err := s.store.FindByEmail(context.Background(), admin.Email)
	require.NoError(s.T(), err)
	found.Status = models.StatusInactive

	again, err := s.store.FindByEmail(context.Background(), admin.Email)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusActive, again.Status)
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}
