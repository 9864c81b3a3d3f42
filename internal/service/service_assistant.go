package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/store"
	"github.com/flashnote/core/models"
)

// assistantContextLimit bounds how many recent notes accompany each chat
// turn.
const assistantContextLimit = 20

// ActionOutcome reports the execution of one assistant-requested action.
type ActionOutcome struct {
	Type    models.ActionType `json:"type"`
	Success bool              `json:"success"`
	Detail  string            `json:"detail,omitempty"`
}

// ChatResult is one completed assistant turn: the reply plus the outcome of
// every executed action.
type ChatResult struct {
	Reply    models.AssistantReply `json:"reply"`
	Outcomes []ActionOutcome       `json:"outcomes"`
}

type assistantService struct {
	notes   store.NoteRepository
	gateway AIGateway

	logger *logger.Logger
}

func NewAssistantService(notes store.NoteRepository, gateway AIGateway, logger *logger.Logger) AssistantService {
	return &assistantService{
		notes:   notes,
		gateway: gateway,
		logger:  logger,
	}
}

// Chat runs one assistant turn: recent notes are loaded as context, the
// provider produces a reply, and every valid requested action is executed
// against the store. Action failures become per-action outcomes, never
// errors; the error return covers context loading only.
func (s *assistantService) Chat(ctx context.Context, userInput string) (ChatResult, error) {
	recent, err := s.notes.GetNotes(ctx, assistantContextLimit, 0)
	if err != nil {
		return ChatResult{}, fmt.Errorf("loading recent notes: %w", err)
	}

	reply := s.gateway.ProcessAssistantChat(ctx, userInput, recent)

	outcomes := make([]ActionOutcome, 0, len(reply.Actions))
	for _, action := range reply.Actions {
		outcomes = append(outcomes, s.execute(ctx, action))
	}

	return ChatResult{Reply: reply, Outcomes: outcomes}, nil
}

func (s *assistantService) execute(ctx context.Context, action models.AssistantAction) ActionOutcome {
	outcome := ActionOutcome{Type: action.Type}

	switch action.Type {
	case models.ActionCreate:
		outcome = s.executeCreate(ctx, action)
	case models.ActionSearch:
		outcome = s.executeSearch(ctx, action)
	case models.ActionDelete:
		outcome = s.executeDelete(ctx, action)
	case models.ActionUpdate:
		outcome = s.executeUpdate(ctx, action)
	case models.ActionAnalyze:
		// analysis happens in the reply text itself, nothing to execute
		outcome.Success = true
	default:
		outcome.Detail = "unsupported action"
	}

	if !outcome.Success {
		s.logger.Warn().Str("func", "assistantService.execute").
			Str("action", string(action.Type)).Str("detail", outcome.Detail).
			Msg("assistant action failed")
	}

	return outcome
}

func (s *assistantService) executeCreate(ctx context.Context, action models.AssistantAction) ActionOutcome {
	outcome := ActionOutcome{Type: action.Type}

	text := stringParam(action.Params, "text")
	if text == "" {
		outcome.Detail = "missing text"
		return outcome
	}

	note, err := s.notes.CreateNote(ctx, models.CreateNoteInput{
		Text:       text,
		TypeHint:   models.NoteType(stringParam(action.Params, "type")),
		ProjectTag: stringParam(action.Params, "project_tag"),
	})
	if err != nil {
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.Detail = note.ID
	return outcome
}

func (s *assistantService) executeSearch(ctx context.Context, action models.AssistantAction) ActionOutcome {
	outcome := ActionOutcome{Type: action.Type}

	query := stringParam(action.Params, "query")
	if query == "" {
		outcome.Detail = "missing query"
		return outcome
	}

	found, err := s.notes.SearchNotes(ctx, query, assistantContextLimit)
	if err != nil {
		outcome.Detail = err.Error()
		return outcome
	}

	outcome.Success = true
	outcome.Detail = fmt.Sprintf("%d matching notes", len(found))
	return outcome
}

func (s *assistantService) executeDelete(ctx context.Context, action models.AssistantAction) ActionOutcome {
	outcome := ActionOutcome{Type: action.Type}

	id := stringParam(action.Params, "id")
	if id == "" {
		outcome.Detail = "missing id"
		return outcome
	}

	deleted, err := s.notes.DeleteNote(ctx, id)
	if err != nil {
		outcome.Detail = err.Error()
		return outcome
	}
	if !deleted {
		outcome.Detail = "note not found"
		return outcome
	}

	outcome.Success = true
	return outcome
}

func (s *assistantService) executeUpdate(ctx context.Context, action models.AssistantAction) ActionOutcome {
	outcome := ActionOutcome{Type: action.Type}

	id := stringParam(action.Params, "id")
	if id == "" {
		outcome.Detail = "missing id"
		return outcome
	}

	updated := false
	if text := stringParam(action.Params, "text"); text != "" {
		ok, err := s.notes.UpdateNoteText(ctx, id, text)
		if err != nil {
			outcome.Detail = err.Error()
			return outcome
		}
		updated = updated || ok
	}
	if status := stringParam(action.Params, "status"); status != "" {
		ok, err := s.notes.UpdateNoteStatus(ctx, id, models.NoteStatus(status))
		if err != nil {
			outcome.Detail = err.Error()
			return outcome
		}
		updated = updated || ok
	}

	if !updated {
		outcome.Detail = "nothing updated"
		return outcome
	}

	outcome.Success = true
	return outcome
}

// stringParam reads a string-valued parameter, tolerating absent keys and
// non-string values.
func stringParam(params map[string]any, key string) string {
	value, ok := params[key].(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(value)
}
