package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Group) TableName() string {
	return "groups"
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.Id == uuid.Nil {
		g.Id = uuid.New()
	}
	return nil
}

type GroupMember struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupId  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user"`
	UserId   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user"`
	Role     string    `gorm:"type:varchar(20);not null;default:MEMBER"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

func (m *GroupMember) BeforeCreate(tx *gorm.DB) error {
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	return nil
}

type Challenge struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null;index"`
	TargetType  string    `gorm:"type:varchar(30);not null"`
	TargetValue int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Challenge) TableName() string {
	return "challenges"
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

type ChallengeParticipant struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChallengeId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_participants_challenge_user"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_participants_challenge_user"`
	Status      string    `gorm:"type:varchar(20);not null;default:JOINED"`
	JoinedAt    time.Time `gorm:"autoCreateTime"`
}

func (ChallengeParticipant) TableName() string {
	return "challenge_participants"
}

func (p *ChallengeParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	return nil
}
