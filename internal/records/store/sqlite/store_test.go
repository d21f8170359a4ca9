package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"recordkeeper/internal/platform/database"
	"recordkeeper/internal/records"
	"recordkeeper/pkg/bounded"
	id "recordkeeper/pkg/domain"
)

type contact struct {
	Name bounded.Str64 `json:"name"`
	Age  uint32        `json:"age"`
}

type SQLiteMapSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *database.Pool
	users *Map[id.AccountID, contact]
}

func (s *SQLiteMapSuite) SetupTest() {
	s.ctx = context.Background()
	cfg := database.DefaultConfig()
	cfg.Path = filepath.Join(s.T().TempDir(), "records.db")

	pool, err := database.New(cfg)
	s.Require().NoError(err)
	s.pool = pool
	s.users = NewMap[id.AccountID, contact](pool.DB(), "user")
}

func (s *SQLiteMapSuite) TearDownTest() {
	s.Require().NoError(s.pool.Close())
}

func TestSQLiteMapSuite(t *testing.T) {
	suite.Run(t, new(SQLiteMapSuite))
}

func (s *SQLiteMapSuite) TestPutGetDelete() {
	acct := id.NewAccountID()
	want := contact{Name: bounded.MustNew[bounded.Cap64]("Jane"), Age: 30}

	_, ok, err := s.users.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.users.Put(s.ctx, acct, want))
	got, ok, err := s.users.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Jane", got.Name.String())
	s.Equal(uint32(30), got.Age)

	s.Require().NoError(s.users.Delete(s.ctx, acct))
	_, ok, err = s.users.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SQLiteMapSuite) TestPutOverwrites() {
	acct := id.NewAccountID()
	s.Require().NoError(s.users.Put(s.ctx, acct, contact{Age: 1}))
	s.Require().NoError(s.users.Put(s.ctx, acct, contact{Age: 2}))

	got, _, err := s.users.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.Equal(uint32(2), got.Age)

	n, err := s.users.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *SQLiteMapSuite) TestSchemasAreIsolated() {
	acct := id.NewAccountID()
	profiles := NewMap[id.AccountID, contact](s.pool.DB(), "profile")

	s.Require().NoError(s.users.Put(s.ctx, acct, contact{Age: 7}))
	_, ok, err := profiles.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SQLiteMapSuite) TestInvalidUTF8SurvivesAndDecodesEmpty() {
	acct := id.NewAccountID()
	raw, err := bounded.FromBytes[bounded.Cap64]([]byte{0xff, 0xfe})
	s.Require().NoError(err)
	s.Require().NoError(s.users.Put(s.ctx, acct, contact{Name: raw}))

	got, _, err := s.users.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.Equal([]byte{0xff, 0xfe}, got.Name.Bytes())
	s.Equal("", got.Name.String())
}

func TestStoreOverSQLite(t *testing.T) {
	cfg := database.DefaultConfig()
	cfg.Path = filepath.Join(t.TempDir(), "records.db")
	pool, err := database.New(cfg)
	require.NoError(t, err)
	defer pool.Close() //nolint:errcheck // test cleanup

	ctx := context.Background()
	store := records.New[id.AccountID, contact](NewMap[id.AccountID, contact](pool.DB(), "user"))
	acct := id.NewAccountID()

	require.NoError(t, store.Create(ctx, acct, contact{Age: 30}))
	require.ErrorIs(t, store.Create(ctx, acct, contact{Age: 31}), records.ErrDuplicateRecord)
	require.NoError(t, store.Remove(ctx, acct))
	require.ErrorIs(t, store.Remove(ctx, acct), records.ErrRecordNotFound)
}
