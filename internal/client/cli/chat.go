package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/cobragpt/internal/client/models"
)

// Chat sends text to the assistant and prints the reply. Only signed-in
// users can chat.
func (a *App) Chat(ctx context.Context, text string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	reply, err := a.chat.Send(ctx, text)
	if err != nil {
		return err
	}
	printlnFn(formatMessage(reply))
	return nil
}

// History prints the conversation so far.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	for _, m := range a.chat.History() {
		printlnFn(formatMessage(m))
	}
	return nil
}

func formatMessage(m models.Message) string {
	return fmt.Sprintf("[%s] %s: %s", m.Timestamp.Local().Format(time.TimeOnly), m.Role, m.Content)
}
