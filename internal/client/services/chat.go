package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message is empty")

const (
	greeting     = "Hi! I am your cyber security assistant. How can I help you today?"
	cannedAnswer = "I understand your security concern. Let me analyze that and provide a detailed response..."
)

// ChatService keeps one conversation with a simulated assistant.
type ChatService interface {
	Send(ctx context.Context, content string) (models.Message, error)
	History() []models.Message
}

type chatService struct {
	replyDelay time.Duration
	now        func() time.Time

	mu       sync.Mutex
	messages []models.Message
}

func NewChatService(replyDelay time.Duration) ChatService {
	c := &chatService{replyDelay: replyDelay, now: time.Now}
	c.messages = []models.Message{c.newMessage(models.MessageRoleAssistant, greeting)}
	return c
}

func (c *chatService) newMessage(role models.MessageRole, content string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: c.now().UTC(),
	}
}

// Send records content as a user message and, after the reply delay,
// records and returns the assistant's answer. When ctx ends first the user
// message stays in the history without an answer.
func (c *chatService) Send(ctx context.Context, content string) (models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return models.Message{}, ErrEmptyMessage
	}

	c.mu.Lock()
	c.messages = append(c.messages, c.newMessage(models.MessageRoleUser, content))
	c.mu.Unlock()

	if c.replyDelay > 0 {
		t := time.NewTimer(c.replyDelay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return models.Message{}, ctx.Err()
		}
	}

	reply := c.newMessage(models.MessageRoleAssistant, cannedAnswer)

	c.mu.Lock()
	c.messages = append(c.messages, reply)
	c.mu.Unlock()

	return reply, nil
}

func (c *chatService) History() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Message(nil), c.messages...)
}
