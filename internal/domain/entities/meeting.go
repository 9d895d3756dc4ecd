package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MinTopicLength is the minimum number of characters of a trimmed topic
const MinTopicLength = 5

// MeetingStatus is persisted as an integer: 1 = active, 0 = closed
type MeetingStatus int

const (
	MeetingStatusClosed MeetingStatus = 0
	MeetingStatusActive MeetingStatus = 1
)

// Meeting is a bounded brainstorming session with one topic
type Meeting struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Topic     string        `gorm:"type:text;not null" json:"topic"`
	Status    MeetingStatus `gorm:"not null;default:1;index" json:"status"`
	StartTime time.Time     `gorm:"not null" json:"start_time"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting validates the topic and builds an active meeting
func NewMeeting(topic string, now time.Time) (*Meeting, error) {
	trimmed, err := NormalizeTopic(topic)
	if err != nil {
		return nil, err
	}
	return &Meeting{
		Topic:     trimmed,
		Status:    MeetingStatusActive,
		StartTime: now,
	}, nil
}

// NormalizeTopic trims the topic and checks its minimum length
func NormalizeTopic(topic string) (string, error) {
	trimmed := strings.TrimSpace(topic)
	if utf8.RuneCountInString(trimmed) < MinTopicLength {
		return "", ErrTopicTooShort
	}
	return trimmed, nil
}

// IsActive checks if the meeting is accepting proposals
func (m *Meeting) IsActive() bool {
	return m.Status == MeetingStatusActive
}
