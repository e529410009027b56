package unitofwork

import (
	"context"

	"diet-coach-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	FoodLogRepository() contract.FoodLogRepository
	ExerciseLogRepository() contract.ExerciseLogRepository
	WaterLogRepository() contract.WaterLogRepository
	ActivityRepository() contract.ActivityRepository
	TransactionRepository() contract.TransactionRepository
	GoogleAuthRepository() contract.GoogleAuthRepository
	ChatMessageRepository() contract.ChatMessageRepository
	GroupRepository() contract.GroupRepository
	ChallengeRepository() contract.ChallengeRepository
}
