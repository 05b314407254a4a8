package models

import "time"

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// Message is one entry of a chat conversation.
type Message struct {
	ID        string
	Role      MessageRole
	Content   string
	Timestamp time.Time
}
