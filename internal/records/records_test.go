package records

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type note struct {
	Title string
	Stars uint32
}

var errTooManyStars = errors.New("too many stars")

type StoreSuite struct {
	suite.Suite
	ctx     context.Context
	backing *InMemory[string, note]
	store   *Store[string, note]
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.backing = NewInMemory[string, note]()
	s.store = New[string, note](s.backing)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) TestCreateThenRead() {
	require.NoError(s.T(), s.store.Create(s.ctx, "a", note{Title: "first", Stars: 3}))

	got, err := s.store.Read(s.ctx, "a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), note{Title: "first", Stars: 3}, got)
}

func (s *StoreSuite) TestCreateDuplicateLeavesStateUnchanged() {
	require.NoError(s.T(), s.store.Create(s.ctx, "a", note{Title: "first"}))

	err := s.store.Create(s.ctx, "a", note{Title: "second"})
	assert.ErrorIs(s.T(), err, ErrDuplicateRecord)

	got, err := s.store.Read(s.ctx, "a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "first", got.Title)
}

func (s *StoreSuite) TestAbsentKey() {
	_, err := s.store.Read(s.ctx, "missing")
	assert.ErrorIs(s.T(), err, ErrRecordNotFound)

	err = s.store.Merge(s.ctx, "missing", PatchFunc[note](func(n note) (note, error) { return n, nil }))
	assert.ErrorIs(s.T(), err, ErrRecordNotFound)

	err = s.store.Remove(s.ctx, "missing")
	assert.ErrorIs(s.T(), err, ErrRecordNotFound)

	assert.Equal(s.T(), 0, s.backing.Len())
}

func (s *StoreSuite) TestReplaceIsUnconditional() {
	require.NoError(s.T(), s.store.Replace(s.ctx, "a", note{Title: "fresh"}))
	require.NoError(s.T(), s.store.Replace(s.ctx, "a", note{Title: "again"}))

	got, err := s.store.Read(s.ctx, "a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "again", got.Title)
}

func (s *StoreSuite) TestMerge() {
	require.NoError(s.T(), s.store.Create(s.ctx, "a", note{Title: "first", Stars: 1}))

	s.Run("commits staged fields", func() {
		err := s.store.Merge(s.ctx, "a", PatchFunc[note](func(n note) (note, error) {
			n.Stars = 4
			return n, nil
		}))
		require.NoError(s.T(), err)

		got, _ := s.store.Read(s.ctx, "a")
		s.Equal(note{Title: "first", Stars: 4}, got)
	})

	s.Run("failed patch writes nothing", func() {
		err := s.store.Merge(s.ctx, "a", PatchFunc[note](func(n note) (note, error) {
			n.Title = "staged"
			n.Stars = 99
			return n, errTooManyStars
		}))
		s.ErrorIs(err, errTooManyStars)

		got, _ := s.store.Read(s.ctx, "a")
		s.Equal(note{Title: "first", Stars: 4}, got)
	})

	s.Run("identity patch keeps record", func() {
		err := s.store.Merge(s.ctx, "a", PatchFunc[note](func(n note) (note, error) { return n, nil }))
		require.NoError(s.T(), err)

		got, _ := s.store.Read(s.ctx, "a")
		s.Equal(note{Title: "first", Stars: 4}, got)
	})
}

func (s *StoreSuite) TestRemoveThenRecreate() {
	require.NoError(s.T(), s.store.Create(s.ctx, "a", note{Title: "first"}))
	require.NoError(s.T(), s.store.Remove(s.ctx, "a"))

	exists, err := s.store.Exists(s.ctx, "a")
	require.NoError(s.T(), err)
	s.False(exists)

	require.NoError(s.T(), s.store.Create(s.ctx, "a", note{Title: "second"}))
}

// brokenMap fails every call, standing in for an unreachable backend.
type brokenMap struct{ err error }

func (b brokenMap) Get(context.Context, string) (note, bool, error) { return note{}, false, b.err }
func (b brokenMap) Put(context.Context, string, note) error        { return b.err }
func (b brokenMap) Delete(context.Context, string) error           { return b.err }

func TestStoreSurfacesBackendErrors(t *testing.T) {
	backendErr := errors.New("connection refused")
	store := New[string, note](brokenMap{err: backendErr})
	ctx := context.Background()

	assert.ErrorIs(t, store.Create(ctx, "a", note{}), backendErr)
	assert.ErrorIs(t, store.Replace(ctx, "a", note{}), backendErr)
	assert.ErrorIs(t, store.Remove(ctx, "a"), backendErr)
	_, err := store.Read(ctx, "a")
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
