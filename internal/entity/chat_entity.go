package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage content is stored encrypted at rest. Quest is the raw quest
// JSON attached to assistant turns, nil when the reply carried none.
type ChatMessage struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Role      ChatRole
	Content   string
	Quest     json.RawMessage
	CreatedAt time.Time
}
