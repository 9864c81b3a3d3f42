// Package classifier infers a note category from raw text using
// case-insensitive keyword matching.
//
// Categories are evaluated in a fixed precedence order (todo, issue, idea,
// feeling); the first category with a matching keyword wins and plain
// observations fall through to the generic note category. The classifier is
// pure and produces no confidence value.
package classifier

import (
	"strings"

	"github.com/flashnote/core/models"
)

// Keyword vocabulary per category. Matching is substring-based over the
// lowercased text, so English keywords also match inside longer words
// (e.g. "optimize" via "optimi").
var (
	todoKeywords = []string{
		"todo", "to do", "to-do", "follow up", "follow-up",
		"remember to", "don't forget", "need to", "have to",
		"tomorrow", "deadline", "by friday", "next week",
		"待办", "要做", "需要", "记得", "跟进", "明天", "下周", "别忘",
	}

	issueKeywords = []string{
		"bug", "issue", "error", "broken", "crash", "fail",
		"problem", "risk", "regression", "doesn't work", "not working",
		"问题", "故障", "异常", "风险", "报错", "崩溃", "坏了",
	}

	ideaKeywords = []string{
		"idea", "maybe we", "what if", "could try", "suggest",
		"improve", "optimi", "refactor", "better way",
		"想法", "建议", "优化", "改进", "可以考虑", "不如",
	}

	feelingKeywords = []string{
		"feel", "happy", "sad", "tired", "exhausted", "anxious",
		"excited", "frustrat", "annoyed", "grateful", "stressed",
		"开心", "难过", "焦虑", "心累", "烦躁", "兴奋", "感觉", "心情",
	}
)

// ordered evaluation: first matching category wins.
var categories = []struct {
	hint     models.NoteType
	keywords []string
}{
	{models.TypeTodo, todoKeywords},
	{models.TypeIssue, issueKeywords},
	{models.TypeIdea, ideaKeywords},
	{models.TypeFeeling, feelingKeywords},
}

// Classify maps text to a note type hint. Text matching a todo marker
// classifies as todo even when it also contains vocabulary from a
// lower-precedence category. Empty or unmatched text yields the generic
// note type.
func Classify(text string) models.NoteType {
	lowered := strings.ToLower(text)

	for _, category := range categories {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return category.hint
			}
		}
	}

	return models.TypeNote
}
