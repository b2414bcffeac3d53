package dto

type ChatRequest struct {
	Message string `json:"message"`
	// Query is accepted as an alias for Message.
	Query  string `json:"query"`
	UserID string `json:"user_id"`
}

// ChatResponse is the resolved chatbot turn. Source is one of
// "faq", "scheme", "fallback". Result carries the matched entry
// when a corpus produced the reply.
type ChatResponse struct {
	Reply  string      `json:"reply"`
	Intent string      `json:"intent"`
	Source string      `json:"source"`
	Result interface{} `json:"result"`
}
