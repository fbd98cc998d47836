package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/encodeous/bestpath/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestStartExampleScenario(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := state.ExampleScenario()
	cfg.Router.LogPath = filepath.Join(t.TempDir(), "logs", "r3.log")

	steps := 0
	res, err := Start(cfg, slog.LevelInfo, func(adv state.Advertisement, d state.Decision, table []state.TableEntry) {
		steps++
		assert.Equal(t, cfg.Advertisements[steps-1], adv)
		assert.Len(t, table, 1)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, steps)

	require.Len(t, res.Decisions, 2)
	assert.Equal(t, state.Installed, res.Decisions[0].Kind)
	assert.Equal(t, state.Updated, res.Decisions[1].Kind)
	assert.Equal(t, []state.TableEntry{{Destination: exampleDst, Route: route(200, 300, 400, 500, 100)}}, res.Table)

	require.Contains(t, res.History, exampleDst)
	assert.Len(t, res.History[exampleDst], 2)

	log, err := os.ReadFile(cfg.Router.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(log), "route updated")
}

func TestStartInvalidScenario(t *testing.T) {
	cfg := state.ExampleScenario()
	cfg.Router.As = 0
	_, err := Start(cfg, slog.LevelError, nil)
	assert.Error(t, err)
}

func TestReplayWithoutStep(t *testing.T) {
	defer goleak.VerifyNone(t)
	cfg := state.ExampleScenario()
	r := newTestRouter(t, cfg.Router)
	defer r.Close()

	decisions := Replay(r, append(cfg.Advertisements, cfg.Advertisements[0]), nil)
	kinds := make([]state.DecisionKind, 0, len(decisions))
	for _, d := range decisions {
		kinds = append(kinds, d.Kind)
	}
	assert.Equal(t, []state.DecisionKind{state.Installed, state.Updated, state.Rejected}, kinds)
}
