package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"diet-coach-be/internal/dto"
	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/calendar"
	"diet-coach-be/pkg/entitlement"
)

// fakeGoogleAuth hands out a static token source, or an error when the user
// is treated as not connected.
type fakeGoogleAuth struct {
	err error
}

func (f *fakeGoogleAuth) GetAuthURL(context.Context, uuid.UUID) (*dto.GoogleAuthURLResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGoogleAuth) HandleCallback(context.Context, string, string) error {
	return errors.New("not implemented")
}

func (f *fakeGoogleAuth) Status(context.Context, uuid.UUID) (*dto.GoogleAuthStatusResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeGoogleAuth) Disconnect(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeGoogleAuth) TokenSource(context.Context, uuid.UUID) (oauth2.TokenSource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), nil
}

func seedActivity(t *testing.T, factory unitofwork.RepositoryFactory, userId uuid.UUID, title string) *entity.Activity {
	t.Helper()
	ctx := context.Background()
	activity := &entity.Activity{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     title,
		Category:  entity.CategoryWorkout,
		StartTime: time.Now().Add(time.Hour),
		EndTime:   time.Now().Add(2 * time.Hour),
	}
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ActivityRepository().Create(ctx, activity))
	return activity
}

func TestActivityCreateRejectsInvertedTimes(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	start := time.Now().Add(2 * time.Hour)
	end := start.Add(-time.Hour)
	_, err := svc.Create(ctx, user.Id, &dto.CreateActivityRequest{
		Title:     "Backwards",
		Category:  "workout",
		StartTime: start,
		EndTime:   end,
	})
	require.Error(t, err)
}

func TestActivityCreateWithoutCalendarStaysLocal(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	start := time.Now().Add(time.Hour)
	created, err := svc.Create(ctx, user.Id, &dto.CreateActivityRequest{
		Title:     "Leg day",
		Category:  "workout",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, created.Synced, "no calendar grant: local record only")
	assert.Nil(t, created.GoogleEventId)

	list, err := svc.List(ctx, user.Id, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Leg day", list[0].Title)
}

func TestActivityUpdateOwnership(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	owner := seedUser(t, factory)
	intruder := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	activity := seedActivity(t, factory, owner.Id, "Yoga")

	title := "Hot yoga"
	_, err := svc.Update(ctx, intruder.Id, activity.Id, &dto.UpdateActivityRequest{Title: &title})
	require.True(t, errors.Is(err, ErrNotFound))

	updated, err := svc.Update(ctx, owner.Id, activity.Id, &dto.UpdateActivityRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hot yoga", updated.Title)
}

func TestSyncNowRequiresPremium(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	_, err := svc.SyncNow(ctx, user.Id)
	require.True(t, errors.Is(err, entitlement.ErrPremiumRequired))
}

func TestSyncNowSkipsFailedInserts(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))

	inserts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		inserts++
		if inserts == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"id": "evt-%d"}`, inserts)
	}))
	defer server.Close()

	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{}, calendar.NewClientWithBase(server.URL), newTestCodec(t), nopLogger{})

	seedActivity(t, factory, user.Id, "Run")
	seedActivity(t, factory, user.Id, "Swim")
	seedActivity(t, factory, user.Id, "Ride")

	result, err := svc.SyncNow(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, 2, result.SyncedCount, "one insert failed and was skipped")

	uow := factory.NewUnitOfWork(ctx)
	remaining, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.Unsynced{},
	)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "the failed activity stays queued for the next sync")
}

func TestSyncNowAbortsOnExpiredGrant(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{}, calendar.NewClientWithBase(server.URL), newTestCodec(t), nopLogger{})

	seedActivity(t, factory, user.Id, "Run")

	_, err := svc.SyncNow(ctx, user.Id)
	require.True(t, errors.Is(err, ErrCalendarAuthExpired))
}

func TestActivityDescriptionEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	start := time.Now().Add(time.Hour)
	created, err := svc.Create(ctx, user.Id, &dto.CreateActivityRequest{
		Title:       "Checkup",
		Description: "fasting bloodwork at the clinic",
		Category:    "other",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "fasting bloodwork at the clinic", created.Description)

	uow := factory.NewUnitOfWork(ctx)
	raw, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.NotEqual(t, "fasting bloodwork at the clinic", raw.Description)
	assert.Equal(t, 2, strings.Count(raw.Description, ":"), "stored description should carry the cipher envelope")

	list, err := svc.List(ctx, user.Id, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "fasting bloodwork at the clinic", list[0].Description)
}

func TestActivityCreateDefaultsEndTime(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	start := time.Now().Add(time.Hour)
	created, err := svc.Create(ctx, user.Id, &dto.CreateActivityRequest{
		Title:     "Stretching",
		Category:  "workout",
		StartTime: start,
	})
	require.NoError(t, err)
	assert.WithinDuration(t, start.Add(time.Hour), created.EndTime, time.Second)
}

func TestSyncNowSkipsPastActivities(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory, asPremium(time.Now().Add(48*time.Hour)))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "evt-1"}`)
	}))
	defer server.Close()

	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{}, calendar.NewClientWithBase(server.URL), newTestCodec(t), nopLogger{})

	stale := &entity.Activity{
		Id:        uuid.New(),
		UserId:    user.Id,
		Title:     "Last week's run",
		Category:  entity.CategoryWorkout,
		StartTime: time.Now().AddDate(0, 0, -7),
		EndTime:   time.Now().AddDate(0, 0, -7).Add(time.Hour),
	}
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.ActivityRepository().Create(ctx, stale))
	seedActivity(t, factory, user.Id, "Tomorrow's run")

	result, err := svc.SyncNow(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount, "past activities are not candidates")
	assert.Equal(t, 1, result.SyncedCount)

	refreshed, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: stale.Id})
	require.NoError(t, err)
	assert.False(t, refreshed.Synced)
}

func TestActivityDeleteRemovesRecord(t *testing.T) {
	ctx := context.Background()
	factory := newTestFactory(t)
	user := seedUser(t, factory)
	gate := entitlement.NewGate(NewGateStore(factory))
	svc := NewActivityService(factory, gate, &fakeGoogleAuth{err: ErrCalendarNotConnected}, calendar.NewClient(), newTestCodec(t), nopLogger{})

	activity := seedActivity(t, factory, user.Id, "Pilates")
	require.NoError(t, svc.Delete(ctx, user.Id, activity.Id))

	list, err := svc.List(ctx, user.Id, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.True(t, errors.Is(svc.Delete(ctx, user.Id, activity.Id), ErrNotFound))
}
