package device

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "device.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTokenRoundTrip(t *testing.T) {
	s := openTestStore(t)

	tok, err := s.Token()
	if err != nil {
		t.Fatalf("read empty token: %v", err)
	}
	if tok != "" {
		t.Errorf("fresh store token = %q, want empty", tok)
	}

	if err := s.SaveToken("first"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SaveToken("second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	tok, err = s.Token()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if tok != "second" {
		t.Errorf("token = %q, want second (last write wins)", tok)
	}

	if err := s.DeleteToken(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tok, _ = s.Token()
	if tok != "" {
		t.Errorf("token after delete = %q, want empty", tok)
	}

	// Deleting again must not error.
	if err := s.DeleteToken(); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestChatHistoryOrderAndTrim(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		msg := ChatMessage{
			ID:        fmt.Sprintf("m%d", i),
			Content:   fmt.Sprintf("message %d", i),
			Sender:    "user",
			Timestamp: base.Add(time.Duration(i) * time.Second),
		}
		if err := s.AppendChatMessage(msg, 5); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	msgs, err := s.ChatHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 5 {
		t.Fatalf("history length = %d, want 5 (trimmed to cap)", len(msgs))
	}
	// Oldest first, and only the newest five survive.
	for i, m := range msgs {
		want := fmt.Sprintf("m%d", i+3)
		if m.ID != want {
			t.Errorf("msgs[%d].ID = %q, want %q", i, m.ID, want)
		}
	}

	if err := s.ClearChat(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	msgs, _ = s.ChatHistory()
	if len(msgs) != 0 {
		t.Errorf("history after clear = %d entries, want 0", len(msgs))
	}
}

func TestChatHistoryUnlimitedWhenNoCap(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 12; i++ {
		msg := ChatMessage{ID: fmt.Sprintf("m%d", i), Content: "x", Sender: "bot", Timestamp: time.Now()}
		if err := s.AppendChatMessage(msg, 0); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	msgs, err := s.ChatHistory()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 12 {
		t.Errorf("length = %d, want 12 (no trim with zero limit)", len(msgs))
	}
}

func TestTrackedJobs(t *testing.T) {
	s := openTestStore(t)

	id, err := s.TrackJob("j1", "Go Developer", "Acme", "")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id = %d, want positive", id)
	}

	jobs, err := s.TrackedJobs(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("len = %d, want 1", len(jobs))
	}
	got := jobs[0]
	if got.Title != "Go Developer" || got.Company != "Acme" {
		t.Errorf("record = %+v", got)
	}
	if got.Status != "applied" {
		t.Errorf("status = %q, want default applied", got.Status)
	}

	if err := s.UpdateTrackedJob(id, "shortlisted", "phone screen friday"); err != nil {
		t.Fatalf("update: %v", err)
	}
	jobs, _ = s.TrackedJobs(10)
	if jobs[0].Status != "shortlisted" || jobs[0].Notes != "phone screen friday" {
		t.Errorf("after update: %+v", jobs[0])
	}
}

func TestTrackJobValidation(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.TrackJob("", "", "Acme", "applied"); err == nil {
		t.Error("expected error for missing title")
	}
	if err := s.UpdateTrackedJob(0, "viewed", ""); err == nil {
		t.Error("expected error for missing id")
	}
	if err := s.UpdateTrackedJob(1, "", ""); err == nil {
		t.Error("expected error for empty update")
	}
}
