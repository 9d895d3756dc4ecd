package presenter

import (
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/dto/brainstorm"
	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
	brainstormUsecase "github.com/johnquangdev/brainstorm-assistant/internal/usecase/brainstorm"
)

// ToProposalResponse converts a Proposal entity to ProposalResponse DTO
func ToProposalResponse(p *entities.Proposal) *brainstorm.ProposalResponse {
	if p == nil {
		return nil
	}
	return &brainstorm.ProposalResponse{
		UserName:     p.UserName,
		ProposalText: p.ProposalText,
		Timestamp:    p.Timestamp,
	}
}

// ToProposalListResponse keeps the order of the given proposals
func ToProposalListResponse(proposals []*entities.Proposal) *brainstorm.ProposalListResponse {
	responses := make([]*brainstorm.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		responses = append(responses, ToProposalResponse(p))
	}
	return &brainstorm.ProposalListResponse{Proposals: responses}
}

// ToTopicResponse converts the use case topic to its DTO
func ToTopicResponse(t brainstormUsecase.Topic) *brainstorm.TopicResponse {
	return &brainstorm.TopicResponse{Active: t.Active, Topic: t.Topic}
}
