package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// pollTimeout is the long polling timeout in seconds.
const pollTimeout = 60

// Telegram is a Messenger and message source backed by the Bot API.
type Telegram struct {
	api *tgbotapi.BotAPI
	log *zap.Logger
}

// NewTelegram connects to the Bot API with token.
func NewTelegram(token string, log *zap.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to telegram")
	}
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("Telegram bot authorized", zap.String("username", api.Self.UserName))
	return &Telegram{api: api, log: log}, nil
}

// Updates long-polls for messages until ctx is done.
func (t *Telegram) Updates(ctx context.Context) <-chan Message {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeout
	updates := t.api.GetUpdatesChan(cfg)

	out := make(chan Message)
	go func() {
		defer close(out)
		defer t.api.StopReceivingUpdates()

		for {
			select {
			case <-ctx.Done():
				return
			case u, ok := <-updates:
				if !ok {
					return
				}
				msg, ok := messageFromUpdate(u)
				if !ok {
					continue
				}
				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}

// SendPhoto implements Messenger.
func (t *Telegram) SendPhoto(_ context.Context, chatID int64, name string, image []byte) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: image})
	if _, err := t.api.Send(photo); err != nil {
		return errors.Wrap(err, "failed to send photo")
	}
	return nil
}

// SendText implements Messenger.
func (t *Telegram) SendText(_ context.Context, chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	if _, err := t.api.Send(msg); err != nil {
		return errors.Wrap(err, "failed to send message")
	}
	return nil
}

// messageFromUpdate keeps text messages and drops every other update kind.
func messageFromUpdate(u tgbotapi.Update) (Message, bool) {
	if u.Message == nil || u.Message.Chat == nil || u.Message.Text == "" {
		return Message{}, false
	}
	return Message{
		ChatID:    u.Message.Chat.ID,
		MessageID: u.Message.MessageID,
		Text:      u.Message.Text,
	}, true
}
