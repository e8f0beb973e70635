package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
	"github.com/Skotchmaster/mock_ecom/internal/seed"
	"github.com/Skotchmaster/mock_ecom/pkg/db"
)

var testSecret = []byte("test-secret")

type recordedEvent struct {
	Topic string
	Key   string
	Event mykafka.Event
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	ev, _ := event.(mykafka.Event)
	p.events = append(p.events, recordedEvent{Topic: topic, Key: key, Event: ev})
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Event.Type)
	}
	return out
}

func newStore(t *testing.T, withSeed bool) *repo.GormRepo {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	gdb, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err)
	r := repo.NewGormRepo(gdb)
	require.NoError(t, r.Migrate(ctx))
	t.Cleanup(func() { _ = r.Close(ctx) })
	if withSeed {
		_, err := seed.Run(ctx, r)
		require.NoError(t, err)
	}
	return r
}

func newAuth(r repo.UserRepo, events mykafka.Publisher) *AuthService {
	return &AuthService{Users: r, Events: events, JWTSecret: testSecret, TokenTTL: time.Hour}
}
