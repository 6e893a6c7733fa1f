// Package chat implements the conversational engine: intent routing, query
// rewriting, retrieval-grounded synthesis and the knowledge base summary path.
package chat

import "strings"

// Intent classifies what the user's last message is asking for. The labels
// are the literal values the classifier model is instructed to emit.
type Intent string

const (
	// IntentGreeting covers greetings, thanks, goodbyes and short social acks.
	IntentGreeting Intent = "saudacao"
	// IntentOffTopic covers questions about the assistant itself or anything
	// outside administrative law.
	IntentOffTopic Intent = "conversa_fora_do_nicho"
	// IntentTechnicalQuestion is a direct knowledge-seeking question.
	IntentTechnicalQuestion Intent = "pergunta_tecnica"
	// IntentTopicFollowUp continues an earlier technical discussion.
	IntentTopicFollowUp Intent = "conversa_do_nicho"
	// IntentUnknown is anything the classifier emitted outside the closed set.
	IntentUnknown Intent = ""
)

// ParseIntent normalizes raw classifier output into the closed intent set.
// The model sometimes quotes or uppercases the label, so both are stripped
// before matching. Anything else maps to IntentUnknown.
func ParseIntent(raw string) Intent {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.ReplaceAll(label, `"`, "")
	switch Intent(label) {
	case IntentGreeting, IntentOffTopic, IntentTechnicalQuestion, IntentTopicFollowUp:
		return Intent(label)
	}
	return IntentUnknown
}

// NeedsRetrieval reports whether the intent routes through the knowledge
// path (query rewrite plus retrieval) rather than plain conversation.
func (i Intent) NeedsRetrieval() bool {
	return i == IntentTechnicalQuestion || i == IntentTopicFollowUp
}
