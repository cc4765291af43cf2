package chatbot

import (
	"testing"
	"time"

	"github.com/Ayushs57139/jobportal-go/internal/device"
)

// memHistory is an in-memory History for tests.
type memHistory struct {
	msgs []device.ChatMessage
}

func (m *memHistory) AppendChatMessage(msg device.ChatMessage, limit int) error {
	m.msgs = append(m.msgs, msg)
	if limit > 0 && len(m.msgs) > limit {
		m.msgs = m.msgs[len(m.msgs)-limit:]
	}
	return nil
}

func (m *memHistory) ChatHistory() ([]device.ChatMessage, error) { return m.msgs, nil }

func (m *memHistory) ClearChat() error {
	m.msgs = nil
	return nil
}

func noSleep(time.Duration) {}

func TestMatchBucket(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"How do I find a job?", "jobs"},
		{"any openings in berlin", "jobs"},
		{"can you review my resume", "resume"},
		{"My CV needs work", "resume"},
		{"tell me about the company", "company"},
		{"what skills should I learn", "skills"},
		{"interview preparation tips", "interview"},
		{"how to negotiate salary", "salary"},
		{"hello there", "greeting"},
		{"I need help", "help"},
		{"qwertyuiop", "fallback"},
		{"", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchBucket(tt.input); got.Name != tt.want {
				t.Errorf("MatchBucket(%q) = %q, want %q", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestMatchBucketCaseInsensitive(t *testing.T) {
	if got := MatchBucket("SALARY EXPECTATIONS"); got.Name != "salary" {
		t.Errorf("got %q, want salary", got.Name)
	}
}

func TestBucketsHaveResponses(t *testing.T) {
	for _, b := range buckets {
		if len(b.Responses) == 0 {
			t.Errorf("bucket %q has no responses", b.Name)
		}
	}
}

func TestReplyDeterministicWithSeed(t *testing.T) {
	a := New(nil, WithSeed(7), WithSleeper(noSleep))
	b := New(nil, WithSeed(7), WithSleeper(noSleep))

	inputs := []string{"find me a job", "salary advice", "blah blah"}
	for _, in := range inputs {
		ra, rb := a.Reply(in), b.Reply(in)
		if ra.Content != rb.Content {
			t.Errorf("same seed diverged on %q: %q vs %q", in, ra.Content, rb.Content)
		}
		if ra.Sender != "bot" {
			t.Errorf("Sender = %q, want bot", ra.Sender)
		}
	}
}

func TestReplyTypingDelayRange(t *testing.T) {
	var delays []time.Duration
	b := New(nil, WithSeed(1), WithSleeper(func(d time.Duration) { delays = append(delays, d) }))

	for i := 0; i < 20; i++ {
		b.Reply("hello")
	}
	if len(delays) != 20 {
		t.Fatalf("sleeper called %d times, want 20", len(delays))
	}
	for _, d := range delays {
		if d < time.Second || d >= 3*time.Second {
			t.Errorf("delay %v outside [1s, 3s)", d)
		}
	}
}

func TestReplyRecordsBothSides(t *testing.T) {
	hist := &memHistory{}
	b := New(hist, WithSeed(1), WithSleeper(noSleep))

	b.Reply("hello")

	msgs := b.History()
	if len(msgs) != 2 {
		t.Fatalf("history length = %d, want 2", len(msgs))
	}
	if msgs[0].Sender != "user" || msgs[0].Content != "hello" {
		t.Errorf("first entry = %+v, want the user message", msgs[0])
	}
	if msgs[1].Sender != "bot" || msgs[1].Content == "" {
		t.Errorf("second entry = %+v, want the bot reply", msgs[1])
	}
	if msgs[0].ID == msgs[1].ID {
		t.Error("messages share an ID")
	}
}

func TestHistoryCap(t *testing.T) {
	hist := &memHistory{}
	b := New(hist, WithSeed(1), WithSleeper(noSleep), WithHistoryCap(4))

	for i := 0; i < 10; i++ {
		b.Reply("job search")
	}
	if got := len(b.History()); got != 4 {
		t.Errorf("history length = %d, want 4 (capped)", got)
	}
}

func TestClear(t *testing.T) {
	hist := &memHistory{}
	b := New(hist, WithSeed(1), WithSleeper(noSleep))

	b.Reply("hello")
	if err := b.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := len(b.History()); got != 0 {
		t.Errorf("history after clear = %d, want 0", got)
	}
}

func TestNilHistoryBot(t *testing.T) {
	b := New(nil, WithSeed(1), WithSleeper(noSleep))

	msg := b.Reply("hello")
	if msg.Content == "" {
		t.Error("memory-only bot must still reply")
	}
	if b.History() != nil {
		t.Error("memory-only bot has no history")
	}
	if err := b.Clear(); err != nil {
		t.Errorf("clear on nil history: %v", err)
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	hist := &memHistory{}
	b := New(hist, WithSeed(1), WithSleeper(noSleep), WithClock(func() time.Time { return fixed }))

	b.Reply("hi")
	for _, m := range b.History() {
		if !m.Timestamp.Equal(fixed) {
			t.Errorf("timestamp = %v, want %v", m.Timestamp, fixed)
		}
	}
}
