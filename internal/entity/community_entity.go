package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	GroupCategoryCity = "CITY"
	GroupCategoryAge  = "AGE"
	GroupCategoryGoal = "GOAL"

	GroupRoleMember = "MEMBER"

	ChallengeStatusJoined = "JOINED"
)

type Group struct {
	Id          uuid.UUID
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
}

type GroupMember struct {
	Id       uuid.UUID
	GroupId  uuid.UUID
	UserId   uuid.UUID
	Role     string
	JoinedAt time.Time
}

type Challenge struct {
	Id          uuid.UUID
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	TargetType  string
	TargetValue int
	CreatedAt   time.Time
}

type ChallengeParticipant struct {
	Id          uuid.UUID
	ChallengeId uuid.UUID
	UserId      uuid.UUID
	Status      string
	JoinedAt    time.Time
}
