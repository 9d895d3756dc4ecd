package entities

import (
	"errors"
	"testing"
	"time"
)

func TestNewMeeting_TrimsTopic(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m, err := NewMeeting("   Improve onboarding flow  ", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Topic != "Improve onboarding flow" {
		t.Fatalf("unexpected topic %q", m.Topic)
	}
	if !m.IsActive() {
		t.Fatalf("expected new meeting to be active")
	}
	if !m.StartTime.Equal(now) {
		t.Fatalf("unexpected start time %v", m.StartTime)
	}
}

func TestNewMeeting_RejectsShortTopic(t *testing.T) {
	for _, topic := range []string{"", "    ", "abcd", "  abcd  ", "會議主題"} {
		if _, err := NewMeeting(topic, time.Now()); !errors.Is(err, ErrTopicTooShort) {
			t.Fatalf("topic %q: expected ErrTopicTooShort, got %v", topic, err)
		}
	}
	// five runes, more than five bytes
	if _, err := NewMeeting("腦力激盪會", time.Now()); err != nil {
		t.Fatalf("expected five-rune topic to be accepted, got %v", err)
	}
}

func TestNewProposal(t *testing.T) {
	p, err := NewProposal(7, "  ", "ship it", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.UserName != AnonymousUserName {
		t.Fatalf("expected anonymous user name, got %q", p.UserName)
	}
	if p.MeetingID != 7 {
		t.Fatalf("unexpected meeting id %d", p.MeetingID)
	}

	if _, err := NewProposal(7, "alice", " \n ", time.Now()); !errors.Is(err, ErrEmptyProposal) {
		t.Fatalf("expected ErrEmptyProposal, got %v", err)
	}
	if !IsValidationError(ErrEmptyProposal) || IsValidationError(ErrNoActiveMeeting) {
		t.Fatalf("IsValidationError misclassified domain errors")
	}
}
