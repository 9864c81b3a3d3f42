package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

func TestGenerateToday_FeedsTodayNotesToGateway(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.Notes.CreateNote(ctx, models.CreateNoteInput{Text: "shipped the importer"})
	require.NoError(t, err)

	gateway := &fakeGateway{digest: "## Project Overview\nshipped"}
	digests := NewDigestService(storages.Notes, storages.Digests, gateway, logger.Nop())

	summary, err := digests.GenerateToday(ctx)
	require.NoError(t, err)

	assert.Equal(t, "## Project Overview\nshipped", summary)
	assert.Equal(t, 1, gateway.digestCalls)
	require.Len(t, gateway.lastNotes, 1)
	assert.Equal(t, "shipped the importer", gateway.lastNotes[0].Text)
}

func TestSaveToday_StoresUnderTodayDate(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	_, err := storages.Notes.CreateNote(ctx, models.CreateNoteInput{Text: "wrote the digest service"})
	require.NoError(t, err)

	gateway := &fakeGateway{digest: "today's summary"}
	digests := NewDigestService(storages.Notes, storages.Digests, gateway, logger.Nop())

	saved, err := digests.SaveToday(ctx)
	require.NoError(t, err)

	today := time.Now().Format(digestDateLayout)
	assert.Equal(t, today, saved.Date)
	assert.Equal(t, "today's summary", saved.Summary)

	byDate, err := storages.Digests.GetSavedDigestByDate(ctx, today)
	require.NoError(t, err)
	require.NotNil(t, byDate)
	assert.Equal(t, saved.ID, byDate.ID)
}

func TestSaveToday_SecondSaveKeepsBothEntries(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	gateway := &fakeGateway{digest: "empty day"}
	digests := NewDigestService(storages.Notes, storages.Digests, gateway, logger.Nop())

	first, err := digests.SaveToday(ctx)
	require.NoError(t, err)
	second, err := digests.SaveToday(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	history, err := digests.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
