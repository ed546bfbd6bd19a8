package support

// Role tags who produced a Turn.
type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is the conversation state handed to the turn handler: the pending
// question, the chronological history and the latest answer.
type State struct {
	Question string `json:"question"`
	History  []Turn `json:"history"`
	Answer   string `json:"answer"`
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleHuman || r == RoleAssistant
}
