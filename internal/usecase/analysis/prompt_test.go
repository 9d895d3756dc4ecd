package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/brainstorm-assistant/internal/domain/entities"
)

func TestBuildPrompt(t *testing.T) {
	proposals := []*entities.Proposal{
		{UserName: "alice", ProposalText: "Add a buddy system", Timestamp: time.Now()},
		{UserName: "bob", ProposalText: "Record onboarding videos", Timestamp: time.Now().Add(time.Hour)},
	}

	prompt := BuildPrompt("Improve onboarding flow", proposals, "")

	for _, want := range []string{
		`"Improve onboarding flow"`,
		"Proposal 1 - submitted by alice:\n\"Add a buddy system\"\n",
		"Proposal 2 - submitted by bob:\n\"Record onboarding videos\"\n",
		"## Strengths",
		"## Feasibility Checks & Risks",
		"## Difficulty Assessment",
		"## Summary & Recommendation",
		"roughly 100 words",
		"in English",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}

	if strings.Index(prompt, "alice") > strings.Index(prompt, "bob") {
		t.Fatalf("proposals must keep the given order")
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	proposals := []*entities.Proposal{{UserName: "carol", ProposalText: "idea"}}
	a := BuildPrompt("Topic here", proposals, "Traditional Chinese")
	// timestamps are not part of the prompt
	proposals[0].Timestamp = time.Now()
	b := BuildPrompt("Topic here", proposals, "Traditional Chinese")
	if a != b {
		t.Fatalf("prompt must be reproducible")
	}
	if !strings.Contains(a, "in Traditional Chinese") {
		t.Fatalf("expected configured language in prompt")
	}
}
