package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/assist"
	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/service"
)

type staticGenerator struct{ text string }

func (g staticGenerator) Generate(context.Context, string) (string, error) {
	return g.text, nil
}

func newAssistService(t *testing.T) *service.AssistService {
	t.Helper()
	a := assist.NewAssistant(staticGenerator{text: "- mint condition"}, "", time.Second)
	runner, err := assist.NewTaskRunner(a, 2)
	require.NoError(t, err)
	t.Cleanup(runner.Close)
	return service.NewAssistService(a, runner)
}

func TestAssistService_Enhance(t *testing.T) {
	svc := newAssistService(t)

	text, ok := svc.Enhance(context.Background(), "PS5", domain.CategoryPlayStationDevices)
	assert.True(t, ok)
	assert.Equal(t, "- mint condition", text)

	_, ok = svc.Enhance(context.Background(), "", domain.CategoryPlayStationDevices)
	assert.False(t, ok)
}

func TestAssistService_Tasks(t *testing.T) {
	svc := newAssistService(t)

	started, err := svc.StartTask("draft-1", "PS5", domain.CategoryPlayStationDevices)
	require.NoError(t, err)
	assert.NotEmpty(t, started.ID)
	assert.Equal(t, "draft-1", started.DraftKey)

	require.Eventually(t, func() bool {
		snap, err := svc.GetTask(started.ID)
		return err == nil && snap.Finished
	}, 2*time.Second, 10*time.Millisecond)

	snap, err := svc.GetTask(started.ID)
	require.NoError(t, err)
	assert.True(t, snap.OK)
	assert.Equal(t, "- mint condition", snap.Text)

	require.NoError(t, svc.DisposeTask(started.ID))
	_, err = svc.GetTask(started.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.ErrorIs(t, svc.DisposeTask(started.ID), domain.ErrTaskNotFound)
}
