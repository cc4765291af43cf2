// Package chatbot is the scripted assistant widget: keyword buckets matched
// against the input, a canned response picked per bucket, and a bounded
// conversation history persisted on-device. No server round trip ever.
package chatbot

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushs57139/jobportal-go/internal/device"
)

// DefaultHistoryCap bounds the persisted conversation.
const DefaultHistoryCap = 50

// History persists the conversation. *device.Store implements it.
type History interface {
	AppendChatMessage(msg device.ChatMessage, limit int) error
	ChatHistory() ([]device.ChatMessage, error)
	ClearChat() error
}

// Bot answers scripted questions. Construct with New; inject the sleeper and
// seed in tests to make replies instant and deterministic.
type Bot struct {
	history    History
	historyCap int
	rng        *rand.Rand
	sleep      func(time.Duration)
	now        func() time.Time
}

// BotOption configures a Bot.
type BotOption func(*Bot)

// WithSeed makes response picking and typing delays deterministic.
func WithSeed(seed int64) BotOption {
	return func(b *Bot) { b.rng = rand.New(rand.NewSource(seed)) }
}

// WithSleeper replaces the typing-delay sleep (no-op in tests).
func WithSleeper(fn func(time.Duration)) BotOption {
	return func(b *Bot) { b.sleep = fn }
}

// WithHistoryCap overrides the conversation cap.
func WithHistoryCap(n int) BotOption {
	return func(b *Bot) { b.historyCap = n }
}

// WithClock replaces the timestamp source.
func WithClock(fn func() time.Time) BotOption {
	return func(b *Bot) { b.now = fn }
}

// New builds a bot over the given history store (nil for a memory-only bot).
func New(history History, opts ...BotOption) *Bot {
	b := &Bot{
		history:    history,
		historyCap: DefaultHistoryCap,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:      time.Sleep,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Reply matches input against the topic buckets, waits out the simulated
// typing delay, and returns the bot's message. Both sides of the exchange
// are appended to the persisted history.
func (b *Bot) Reply(input string) device.ChatMessage {
	b.record(device.ChatMessage{
		ID:        uuid.NewString(),
		Content:   input,
		Sender:    "user",
		Timestamp: b.now(),
	})

	bucket := MatchBucket(input)
	response := bucket.Responses[b.rng.Intn(len(bucket.Responses))]

	b.sleep(b.typingDelay())

	msg := device.ChatMessage{
		ID:        uuid.NewString(),
		Content:   response,
		Sender:    "bot",
		Timestamp: b.now(),
	}
	b.record(msg)
	return msg
}

// History returns the persisted conversation, oldest first.
func (b *Bot) History() []device.ChatMessage {
	if b.history == nil {
		return nil
	}
	msgs, err := b.history.ChatHistory()
	if err != nil {
		slog.Warn("chatbot: history load failed", slog.Any("error", err))
		return nil
	}
	return msgs
}

// Clear drops the persisted conversation.
func (b *Bot) Clear() error {
	if b.history == nil {
		return nil
	}
	if err := b.history.ClearChat(); err != nil {
		return fmt.Errorf("chatbot: clear: %w", err)
	}
	return nil
}

// typingDelay picks a simulated delay in [1s, 3s).
func (b *Bot) typingDelay() time.Duration {
	return time.Second + time.Duration(b.rng.Int63n(int64(2*time.Second)))
}

func (b *Bot) record(msg device.ChatMessage) {
	if b.history == nil {
		return
	}
	if err := b.history.AppendChatMessage(msg, b.historyCap); err != nil {
		slog.Warn("chatbot: history append failed", slog.Any("error", err))
	}
}
