package interview

import (
	"context"
	"fmt"
	"strings"

	"github.com/Recognifygeneral/Psychometricist-AI/internal/domain"
)

// questionTemperature keeps interviewer phrasing varied but on-task.
const questionTemperature = 0.7

// openingPrompt frames the very first interviewer message.
const openingPrompt = `You are a warm, curious, and empathetic conversational interviewer.
This is the very first message of the conversation. Greet the user
warmly, introduce yourself briefly as someone who loves getting to know
people through conversation, and ask your first open-ended question.

Use this probe as inspiration (do NOT read it verbatim):
%s

Keep it to 2-3 sentences. Be natural. Do NOT mention psychology or assessments.
`

// continuationPrompt frames every follow-up interviewer message.
const continuationPrompt = `You are a warm, curious, and empathetic conversational interviewer.
Your goal is to have a natural, engaging conversation that helps you
understand the person you are talking to.

RULES — follow strictly:
1. NEVER ask yes/no or closed-ended questions.
2. NEVER mention personality traits, psychology, tests, or assessments.
3. Ask ONE open-ended question at a time.
4. Use the probe below as *inspiration* — rephrase it in your own words
   so it feels natural and conversational, not like a survey.
5. If continuing the conversation, briefly acknowledge what the user
   said before transitioning to the next question.
6. Keep your replies concise (2-4 sentences max).
7. Be genuinely interested — use follow-up cues when appropriate.

CURRENT PROBE (for inspiration only — do NOT read it verbatim):
%s

TARGET BEHAVIOR to elicit:
%s

TURN: %d of %d
`

// QuestionRequest carries everything needed to generate one
// interviewer question.
type QuestionRequest struct {
	Probe     domain.Probe
	History   []domain.ChatMessage // bounded window, most recent last
	IsOpening bool
	Turn      int // 1-based turn about to happen
	MaxTurns  int
}

// LLMQuestioner phrases interviewer questions with a generative model,
// using the probe as inspiration rather than reading it verbatim.
type LLMQuestioner struct {
	completer domain.Completer
}

// NewLLMQuestioner creates the model-backed question generator.
func NewLLMQuestioner(completer domain.Completer) *LLMQuestioner {
	return &LLMQuestioner{completer: completer}
}

// Question generates the next interviewer message.
func (q *LLMQuestioner) Question(ctx context.Context, req QuestionRequest) (string, error) {
	var system string
	if req.IsOpening {
		system = fmt.Sprintf(openingPrompt, req.Probe.Text)
	} else {
		system = fmt.Sprintf(continuationPrompt,
			req.Probe.Text, req.Probe.TargetBehavior, req.Turn, req.MaxTurns)
	}

	res, err := q.completer.Complete(ctx, domain.CompletionRequest{
		System:      system,
		Messages:    req.History,
		Temperature: questionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate question: %w", err)
	}

	question := strings.TrimSpace(res.Content)
	if question == "" {
		return "", fmt.Errorf("generate question: %w", domain.ErrProviderError)
	}
	return question, nil
}
