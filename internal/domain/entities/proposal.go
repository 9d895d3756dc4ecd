package entities

import (
	"strings"
	"time"
)

// AnonymousUserName is recorded when a proposal is submitted without a name
const AnonymousUserName = "Anonymous"

// Proposal is a single participant's contribution to a meeting
type Proposal struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID    uint      `gorm:"not null;index" json:"meeting_id"`
	UserName     string    `gorm:"type:text;not null" json:"user_name"`
	ProposalText string    `gorm:"type:text;not null" json:"proposal_text"`
	Timestamp    time.Time `gorm:"not null;index" json:"timestamp"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// NewProposal validates the text and fills in the anonymous user name
func NewProposal(meetingID uint, userName, text string, now time.Time) (*Proposal, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyProposal
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		userName = AnonymousUserName
	}
	return &Proposal{
		MeetingID:    meetingID,
		UserName:     userName,
		ProposalText: text,
		Timestamp:    now,
	}, nil
}
