package models

// ActionType enumerates the note-management operations the assistant may
// request as part of a chat reply.
type ActionType string

const (
	ActionCreate  ActionType = "create"
	ActionSearch  ActionType = "search"
	ActionDelete  ActionType = "delete"
	ActionUpdate  ActionType = "update"
	ActionAnalyze ActionType = "analyze"
)

// AssistantAction is a single operation requested by the assistant.
// Params are provider-supplied and interpreted by the action executor.
type AssistantAction struct {
	Type   ActionType     `json:"type"`
	Params map[string]any `json:"params"`
}

// AssistantReply is the normalized result of an assistant chat turn.
// Actions is always materialized, empty when the provider returned plain
// prose or unparseable output.
type AssistantReply struct {
	Message string            `json:"message"`
	Actions []AssistantAction `json:"actions"`
}

// ValidActionType reports whether t is one of the supported action kinds.
func ValidActionType(t ActionType) bool {
	switch t {
	case ActionCreate, ActionSearch, ActionDelete, ActionUpdate, ActionAnalyze:
		return true
	}
	return false
}
