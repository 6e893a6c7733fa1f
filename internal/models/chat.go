package models

// Sender identifies who produced a conversation turn.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ConversationTurn is one turn of the chat history, supplied by the caller on
// every request. The server keeps no session state.
type ConversationTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string             `json:"message"`
	History []ConversationTurn `json:"history,omitempty"`
}

// TopicDocument is the structured payload returned when the assistant answers
// a topic-overview request with its fixed summary document.
type TopicDocument struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChatResponse is the body of a successful POST /api/chat.
type ChatResponse struct {
	Reply    string         `json:"reply"`
	Document *TopicDocument `json:"document,omitempty"`
}
