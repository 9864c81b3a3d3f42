package classifier

import (
	"testing"

	"github.com/flashnote/core/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.NoteType
	}{
		{
			name: "explicit task marker",
			text: "TODO: update the dependency list",
			want: models.TypeTodo,
		},
		{
			name: "temporal follow-up phrase",
			text: "need to call the vendor tomorrow",
			want: models.TypeTodo,
		},
		{
			name: "chinese follow-up marker",
			text: "明天要跟进",
			want: models.TypeTodo,
		},
		{
			name: "defect vocabulary",
			text: "the exporter crashes on empty input",
			want: models.TypeIssue,
		},
		{
			name: "risk vocabulary chinese",
			text: "上线有风险",
			want: models.TypeIssue,
		},
		{
			name: "suggestion vocabulary",
			text: "what if we cached the parsed templates",
			want: models.TypeIdea,
		},
		{
			name: "optimization stem matches optimize and optimise",
			text: "we should optimise the startup path",
			want: models.TypeIdea,
		},
		{
			name: "affect vocabulary",
			text: "feeling exhausted after the release",
			want: models.TypeFeeling,
		},
		{
			name: "fallback to note",
			text: "the meeting moved to room 4",
			want: models.TypeNote,
		},
		{
			name: "empty text falls back to note",
			text: "",
			want: models.TypeNote,
		},
		{
			name: "case insensitive matching",
			text: "FOLLOW UP with design",
			want: models.TypeTodo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// A todo marker must win even when idea vocabulary is also present, because
// todo precedence is evaluated first.
func TestClassify_TodoPrecedesIdea(t *testing.T) {
	assert.Equal(t, models.TypeTodo, Classify("明天要跟进这个优化建议"))
	assert.Equal(t, models.TypeTodo, Classify("todo: explore the idea of sharding"))
}

func TestClassify_IssuePrecedesIdea(t *testing.T) {
	assert.Equal(t, models.TypeIssue, Classify("bug in the suggested improvement"))
}

func TestClassify_Deterministic(t *testing.T) {
	const text = "记得跟进优化方案"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(text))
	}
}
