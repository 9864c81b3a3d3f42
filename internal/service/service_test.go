package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/internal/store"
	"github.com/flashnote/core/models"
)

// newTestStorages opens a throwaway sqlite database with the full schema
// applied and wires the repositories over it.
func newTestStorages(t *testing.T) store.Storages {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "flashnote_service_test.db")
	db, err := store.NewConnectSQLite(context.Background(), dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() { _ = db.Close() })
	return store.NewStorages(db, logger.Nop())
}

// fakeGateway scripts provider behavior per operation and records calls.
type fakeGateway struct {
	digest        string
	optimized     string
	reply         models.AssistantReply
	valid         bool
	digestCalls   int
	optimizeCalls int
	chatCalls     int
	lastNotes     []models.Note
	lastInput     string
}

func (g *fakeGateway) GenerateDailyDigest(_ context.Context, notes []models.Note) string {
	g.digestCalls++
	g.lastNotes = notes
	return g.digest
}

func (g *fakeGateway) OptimizeContent(_ context.Context, raw string) string {
	g.optimizeCalls++
	if g.optimized == "" {
		return raw
	}
	return g.optimized
}

func (g *fakeGateway) ProcessAssistantChat(_ context.Context, userInput string, notes []models.Note) models.AssistantReply {
	g.chatCalls++
	g.lastInput = userInput
	g.lastNotes = notes
	return g.reply
}

func (g *fakeGateway) ValidateConfig(context.Context) bool { return g.valid }

// fakeCapturer returns a fixed environment snapshot.
type fakeCapturer struct {
	snapshot models.CaptureContext
	calls    int
}

func (c *fakeCapturer) Capture(context.Context) models.CaptureContext {
	c.calls++
	return c.snapshot
}
