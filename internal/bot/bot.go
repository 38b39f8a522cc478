// Package bot answers plot commands sent as chat messages.
package bot

//go:generate mockgen -source=bot.go -destination=mocks/bot.go -package=mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/chertila/chertila-go/internal/engine"
	"go.uber.org/zap"
)

// Message is an incoming chat message.
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
}

// Messenger delivers replies to a chat.
type Messenger interface {
	SendPhoto(ctx context.Context, chatID int64, name string, image []byte) error
	SendText(ctx context.Context, chatID int64, replyTo int, text string) error
}

// Handler produces the reply for a command.
type Handler interface {
	Handle(ctx context.Context, text string) engine.Reply
}

// Bot dispatches each incoming message to the handler concurrently.
type Bot struct {
	handler Handler
	out     Messenger
	log     *zap.Logger
}

// New creates a Bot.
func New(handler Handler, out Messenger, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{handler: handler, out: out, log: log}
}

// Run handles messages from in until it is closed or ctx is done, then
// waits for in-flight replies.
func (b *Bot) Run(ctx context.Context, in <-chan Message) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-in:
			if !ok {
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.reply(ctx, msg)
			}()
		}
	}
}

func (b *Bot) reply(ctx context.Context, msg Message) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	log := b.log.With(zap.Int64("chat_id", msg.ChatID), zap.Int("message_id", msg.MessageID))

	reply := b.handler.Handle(ctx, msg.Text)

	var err error
	if reply.OK() {
		err = b.out.SendPhoto(ctx, msg.ChatID, photoName(reply.ContentType), reply.Image)
	} else {
		log.Debug("Command failed", zap.Error(reply.Err))
		err = b.out.SendText(ctx, msg.ChatID, msg.MessageID, reply.Text)
	}
	if err != nil {
		log.Error("Failed to send reply", zap.Error(err))
	}
}

func photoName(contentType string) string {
	if contentType == "image/jpeg" {
		return "plot.jpg"
	}
	return "plot.png"
}
