package models

// Chat transcript roles. "model" matches the Gemini API role name.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn in the stylist transcript.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
