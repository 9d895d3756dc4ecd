package brainstorm

// StartMeetingRequest represents the request to start a meeting
type StartMeetingRequest struct {
	Topic string `json:"topic" form:"topic" validate:"max=500"`
}

// SubmitProposalRequest represents the request to submit a proposal.
// Emptiness of proposal_text is checked by the use case after the active
// meeting lookup, so "no active meeting" wins over "empty proposal".
type SubmitProposalRequest struct {
	UserName     string `json:"user_name" form:"user_name" validate:"max=100"`
	ProposalText string `json:"proposal_text" form:"proposal_text" validate:"max=5000"`
}
