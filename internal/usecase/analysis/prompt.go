package analysis

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
)

// DefaultLanguage is the language the analysis is requested in
const DefaultLanguage = "English"

const promptTemplate = `You are a professional meeting AI consultant.
The topic of this brainstorming session is: "%s".
These are all the proposals the team has submitted for this topic:

--- Proposal list ---
%s---

Based on the proposals above, write a professional and rigorous analysis and critique in %s. The response must contain the following four Markdown headings:
## Strengths
## Feasibility Checks & Risks
## Difficulty Assessment
## Summary & Recommendation

Keep the content under each heading to roughly 100 words. The analysis should be objective and in-depth so the team can make a final decision.
`

// BuildPrompt formats the topic and proposals into the analysis request.
// Proposals are enumerated in the order given. The output depends only on
// its inputs.
func BuildPrompt(topic string, proposals []*entities.Proposal, language string) string {
	if language == "" {
		language = DefaultLanguage
	}

	var sb strings.Builder
	for i, p := range proposals {
		fmt.Fprintf(&sb, "Proposal %d - submitted by %s:\n", i+1, p.UserName)
		fmt.Fprintf(&sb, "\"%s\"\n\n", p.ProposalText)
	}

	return fmt.Sprintf(promptTemplate, topic, sb.String(), language)
}
