package models

// ChatMessage is one turn of an advisory chat exchange.
type ChatMessage struct {
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// AIContext is the rolling per-user chat history kept in the context store.
type AIContext struct {
	History []ChatMessage `json:"history"`
}

// ChatRequest is the payload for POST /api/ai/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the advisor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
