package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/model"
	"diet-coach-be/internal/pkg/crypto"
	"diet-coach-be/internal/repository/unitofwork"
	"diet-coach-be/pkg/database"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type xpAward struct {
	userId uuid.UUID
	amount int
	reason string
}

// xpRecorder satisfies IPublisherService and captures awards synchronously so
// tests can assert on them without a running bus.
type xpRecorder struct {
	awards []xpAward
}

func (r *xpRecorder) PublishXpAwarded(_ context.Context, userId uuid.UUID, amount int, reason string) {
	r.awards = append(r.awards, xpAward{userId: userId, amount: amount, reason: reason})
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	// A unique shared-cache name keeps each test on its own in-memory
	// database while letting the connection pool see the same tables.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLiteDB(dsn)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.DietProfile{},
		&model.FoodLog{},
		&model.ExerciseLog{},
		&model.WaterLog{},
		&model.Activity{},
		&model.Transaction{},
		&model.GoogleAuth{},
		&model.ChatMessage{},
		&model.Group{},
		&model.GroupMember{},
		&model.Challenge{},
		&model.ChallengeParticipant{},
	))

	return unitofwork.NewRepositoryFactory(db)
}

func newTestCodec(t *testing.T) *crypto.FieldCodec {
	t.Helper()
	codec, err := crypto.NewFieldCodec("12345678901234567890123456789012", nopLogger{})
	require.NoError(t, err)
	return codec
}

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, mutate ...func(*entity.User)) *entity.User {
	t.Helper()

	user := &entity.User{
		Id:             uuid.New(),
		Email:          uuid.NewString() + "@example.com",
		PasswordHash:   "not-a-real-hash",
		Name:           "Sari",
		MembershipTier: entity.TierFree,
	}
	for _, m := range mutate {
		m(user)
	}

	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}

func asPremium(until time.Time) func(*entity.User) {
	return func(u *entity.User) {
		u.MembershipTier = entity.TierPremium
		u.MembershipExpiry = &until
	}
}
