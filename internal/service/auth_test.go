package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
)

func TestSignup_ValidatesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	events := &recordingPublisher{}
	svc := newAuth(newStore(t, false), events)

	err := svc.Signup(ctx, "", "ann@x.com", "pw1")
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "All fields required", err.Error())

	require.NoError(t, svc.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	err = svc.Signup(ctx, "Ann2", "ann@x.com", "other")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "User already exists", err.Error())

	assert.Equal(t, []string{"user.signed_up"}, events.types())
	assert.Equal(t, mykafka.TopicUserEvents, events.events[0].Topic)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(newStore(t, false), nil)
	require.NoError(t, svc.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	_, err := svc.Login(ctx, "nobody@x.com", "pw1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "User not found", err.Error())

	_, err = svc.Login(ctx, "ann@x.com", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid password", err.Error())

	res, err := svc.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "Ann", res.User.Name)
	assert.Equal(t, "ann@x.com", res.User.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), res.ExpiresAt, 5*time.Second)

	id, err := svc.Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id.UserID)
	assert.Equal(t, "ann@x.com", id.Email)
}

func TestLogin_PublishFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()
	events := &recordingPublisher{err: errors.New("broker down")}
	svc := newAuth(newStore(t, false), events)

	require.NoError(t, svc.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	_, err := svc.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, []string{"user.signed_up", "user.logged_in"}, events.types())
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(newStore(t, false), nil)
	require.NoError(t, svc.Signup(ctx, "Ann", "ann@x.com", "pw1"))

	_, err := svc.Verify("")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "No token provided", err.Error())

	_, err = svc.Verify("garbage")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid token", err.Error())

	svc.Now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	res, err := svc.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	svc.Now = nil

	_, err = svc.Verify(res.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	svc := newAuth(newStore(t, false), nil)
	require.NoError(t, svc.Signup(ctx, "Ann", "ann@x.com", "pw1"))
	res, err := svc.Login(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)

	u, err := svc.Profile(ctx, Identity{UserID: res.User.ID})
	require.NoError(t, err)
	assert.Equal(t, res.User, *u)

	_, err = svc.Profile(ctx, Identity{UserID: 4242})
	assert.ErrorIs(t, err, ErrNotFound)
}
