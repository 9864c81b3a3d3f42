package ai

import (
	"fmt"
	"strings"

	"github.com/flashnote/core/models"
)

// recentNotesLimit bounds the assistant context window.
const recentNotesLimit = 20

// noteProjection renders one note for embedding into a prompt: text,
// timestamp, environment hints, and the type hint.
func noteProjection(note models.Note) string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "- [%s] (%s) %s", note.CreatedAt.Local().Format("15:04"), note.TypeHint, note.Text)
	if note.AppName != "" {
		fmt.Fprintf(b, " (app: %s", note.AppName)
		if note.WindowTitle != "" {
			fmt.Fprintf(b, ", window: %s", note.WindowTitle)
		}
		b.WriteString(")")
	}
	if note.ProjectTag != "" {
		fmt.Fprintf(b, " [project: %s]", note.ProjectTag)
	}

	return b.String()
}

func projectNotes(notes []models.Note) string {
	lines := make([]string, 0, len(notes))
	for _, note := range notes {
		lines = append(lines, noteProjection(note))
	}

	return strings.Join(lines, "\n")
}

// buildDigestPrompt instructs the provider to produce the fixed
// three-section Markdown report over the day's notes.
func buildDigestPrompt(notes []models.Note) string {
	return fmt.Sprintf(`You are a personal productivity assistant. Summarize the notes below into a daily digest with exactly three Markdown sections, in this order:

## Project Overview
For each project, list progress, risks, and ideas captured today.

## To-Do List
A flattened, actionable to-do list drawn from all notes.

## Reflection
A short reflective summary of the day.

Today's notes:
%s`, projectNotes(notes))
}

// buildOptimizePrompt asks the provider to reshape loosely-structured input
// into plain hierarchical text without markup symbols.
func buildOptimizePrompt(raw string) string {
	return fmt.Sprintf(`Reformat the following content into clean, hierarchical plain text. Use indentation only to express structure. Do not use any Markdown symbols such as #, *, -, >, or backticks. Preserve the meaning; do not add commentary.

Content:
%s`, raw)
}

// buildAssistantPrompt describes the assistant's note-management
// capabilities and embeds the bounded recent-notes context.
func buildAssistantPrompt(userInput string, notes []models.Note) string {
	recent := notes
	if len(recent) > recentNotesLimit {
		recent = recent[:recentNotesLimit]
	}

	return fmt.Sprintf(`You are a note-management assistant. You can act on the user's notes via actions of type "create", "search", "delete", "update", or "analyze".

Respond with a single JSON object of the shape:
{"message": "<reply to the user>", "actions": [{"type": "<action type>", "params": {}}]}

Return an empty actions array when no action is needed.

Recent notes:
%s

User: %s`, projectNotes(recent), userInput)
}

// validationPrompt is the minimal canned prompt used to confirm a
// credential is usable.
const validationPrompt = `Reply with the single word OK.`
