package brainstorm

import "time"

// ActionResponse is returned by mutating operations
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TopicResponse describes the current meeting
type TopicResponse struct {
	Active bool   `json:"active"`
	Topic  string `json:"topic"`
}

// AnalysisResponse carries the analysis text or the error report
type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

// ProposalResponse is a single proposal as shown to participants
type ProposalResponse struct {
	UserName     string    `json:"user_name"`
	ProposalText string    `json:"proposal_text"`
	Timestamp    time.Time `json:"timestamp"`
}

// ProposalListResponse lists proposals, most recent first
type ProposalListResponse struct {
	Proposals []*ProposalResponse `json:"proposals"`
}
