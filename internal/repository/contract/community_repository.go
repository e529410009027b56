package contract

import (
	"context"

	"github.com/google/uuid"

	"diet-coach-be/internal/entity"
	"diet-coach-be/internal/repository/specification"
)

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Group, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Group, error)

	CountMembers(ctx context.Context, groupId uuid.UUID) (int64, error)
	FindMember(ctx context.Context, groupId, userId uuid.UUID) (*entity.GroupMember, error)
	AddMember(ctx context.Context, member *entity.GroupMember) error
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Challenge, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Challenge, error)

	CountParticipants(ctx context.Context, challengeId uuid.UUID) (int64, error)
	FindParticipant(ctx context.Context, challengeId, userId uuid.UUID) (*entity.ChallengeParticipant, error)
	AddParticipant(ctx context.Context, participant *entity.ChallengeParticipant) error
}
