package bot_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chertila/chertila-go/internal/bot"
	"github.com/chertila/chertila-go/internal/bot/mocks"
	"github.com/chertila/chertila-go/internal/engine"
	"github.com/chertila/chertila-go/pkg/chertila"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func feed(msgs ...bot.Message) <-chan bot.Message {
	ch := make(chan bot.Message, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return ch
}

func TestRunRepliesWithPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockHandler(ctrl)
	out := mocks.NewMockMessenger(ctrl)

	img := []byte{0x89, 'P', 'N', 'G'}
	handler.EXPECT().
		Handle(gomock.Any(), "чертила ...").
		Return(engine.Reply{Image: img, ContentType: "image/png"})
	out.EXPECT().
		SendPhoto(gomock.Any(), int64(42), "plot.png", img).
		Return(nil)

	b := bot.New(handler, out, nil)
	err := b.Run(context.Background(), feed(bot.Message{ChatID: 42, MessageID: 7, Text: "чертила ..."}))
	assert.NoError(t, err)
}

func TestRunRepliesWithUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockHandler(ctrl)
	out := mocks.NewMockMessenger(ctrl)

	handler.EXPECT().
		Handle(gomock.Any(), "hello").
		Return(engine.Reply{Text: chertila.UsageMessage, Err: chertila.ErrParse})
	out.EXPECT().
		SendText(gomock.Any(), int64(1), 5, chertila.UsageMessage).
		Return(nil)

	b := bot.New(handler, out, nil)
	assert.NoError(t, b.Run(context.Background(), feed(bot.Message{ChatID: 1, MessageID: 5, Text: "hello"})))
}

func TestRunHandlesMessagesIndependently(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockHandler(ctrl)
	out := mocks.NewMockMessenger(ctrl)

	handler.EXPECT().Handle(gomock.Any(), "a").Return(engine.Reply{Image: []byte("a"), ContentType: "image/jpeg"})
	handler.EXPECT().Handle(gomock.Any(), "b").Return(engine.Reply{Text: "nope", Err: errors.New("x")})
	handler.EXPECT().Handle(gomock.Any(), "c").Return(engine.Reply{Image: []byte("c"), ContentType: "image/png"})

	out.EXPECT().SendPhoto(gomock.Any(), int64(1), "plot.jpg", []byte("a")).Return(errors.New("network down"))
	out.EXPECT().SendText(gomock.Any(), int64(2), 20, "nope").Return(nil)
	out.EXPECT().SendPhoto(gomock.Any(), int64(3), "plot.png", []byte("c")).Return(nil)

	b := bot.New(handler, out, nil)
	err := b.Run(context.Background(), feed(
		bot.Message{ChatID: 1, MessageID: 10, Text: "a"},
		bot.Message{ChatID: 2, MessageID: 20, Text: "b"},
		bot.Message{ChatID: 3, MessageID: 30, Text: "c"},
	))
	assert.NoError(t, err)
}

func TestRunIgnoresBlankMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := bot.New(mocks.NewMockHandler(ctrl), mocks.NewMockMessenger(ctrl), nil)

	assert.NoError(t, b.Run(context.Background(), feed(bot.Message{ChatID: 1, Text: "   "})))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := bot.New(mocks.NewMockHandler(ctrl), mocks.NewMockMessenger(ctrl), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx, make(chan bot.Message)) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunWithEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockMessenger(ctrl)

	opts := chertila.DefaultOptions()
	opts.Width, opts.Height = 160, 120
	e := engine.New(opts, 1, nil)

	out.EXPECT().SendPhoto(gomock.Any(), int64(9), "plot.png", gomock.Not(gomock.Nil())).Return(nil)
	out.EXPECT().SendText(gomock.Any(), int64(9), 2, chertila.DegenerateMessage).Return(nil)

	b := bot.New(e, out, nil)
	err := b.Run(context.Background(), feed(
		bot.Message{ChatID: 9, MessageID: 1, Text: `чертила "T" {X,Y} [1,2 2,3 3,4]`},
		bot.Message{ChatID: 9, MessageID: 2, Text: `чертила "T" {X,Y} [1,2 1,3]`},
	))
	assert.NoError(t, err)
}
