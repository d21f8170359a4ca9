package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"recordkeeper/internal/platform/config"
	redisclient "recordkeeper/internal/platform/redis"
	"recordkeeper/internal/records"
	id "recordkeeper/pkg/domain"
)

type note struct {
	Text string `json:"text"`
}

// RedisMapSuite runs against a live server. Set REDIS_ADDR to enable it.
type RedisMapSuite struct {
	suite.Suite
	ctx    context.Context
	client *redisclient.Client
	notes  *Map[id.AccountID, note]
}

func TestRedisMapSuite(t *testing.T) {
	if os.Getenv("REDIS_ADDR") == "" {
		t.Skip("REDIS_ADDR not set")
	}
	suite.Run(t, new(RedisMapSuite))
}

func (s *RedisMapSuite) SetupSuite() {
	s.ctx = context.Background()
	client, err := redisclient.New(s.ctx, config.RedisConfig{Addr: os.Getenv("REDIS_ADDR"), PoolSize: 2})
	s.Require().NoError(err)
	s.client = client
	s.notes = NewMap[id.AccountID, note](client.Cmdable(), "test-notes")
}

func (s *RedisMapSuite) TearDownSuite() {
	s.Require().NoError(s.client.Close())
}

func (s *RedisMapSuite) TestPutGetDelete() {
	acct := id.NewAccountID()

	_, ok, err := s.notes.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.notes.Put(s.ctx, acct, note{Text: "hello"}))
	got, ok, err := s.notes.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("hello", got.Text)

	s.Require().NoError(s.notes.Delete(s.ctx, acct))
	_, ok, err = s.notes.Get(s.ctx, acct)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RedisMapSuite) TestStoreSemantics() {
	store := records.New[id.AccountID, note](s.notes)
	acct := id.NewAccountID()

	s.Require().NoError(store.Create(s.ctx, acct, note{Text: "a"}))
	s.ErrorIs(store.Create(s.ctx, acct, note{Text: "b"}), records.ErrDuplicateRecord)
	s.Require().NoError(store.Remove(s.ctx, acct))
	s.ErrorIs(store.Remove(s.ctx, acct), records.ErrRecordNotFound)
}

func TestKeyLayout(t *testing.T) {
	acct := id.NewAccountID()
	m := NewMap[id.AccountID, note](nil, "profile")
	if got, want := m.key(acct), "records:profile:"+acct.String(); got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}
