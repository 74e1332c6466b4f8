package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwv/roomtrace/rooms"
)

func TestNewApp_NoConfigFileUsesDefaults(t *testing.T) {
	app, err := NewApp("")
	require.NoError(t, err)
	assert.Nil(t, app.Service)
	assert.Equal(t, rooms.DefaultConfig(), app.Tunable)
}

func TestNewApp_LoadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strokeThresh: 3.0
minRoomArea: 0.25
`), 0644))

	app, err := NewApp(path)
	require.NoError(t, err)
	require.NotNil(t, app.Service)
	assert.Equal(t, 3.0, app.Tunable.StrokeThresh)
	assert.Equal(t, 0.25, app.Tunable.MinRoomArea)
}

func TestNewApp_MissingConfigFileErrors(t *testing.T) {
	_, err := NewApp(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEffectiveStrokeThresh_PrefersOverride(t *testing.T) {
	app := &App{Tunable: rooms.DefaultConfig()}
	assert.Equal(t, 4.0, app.effectiveStrokeThresh(4.0))
}

func TestEffectiveStrokeThresh_FallsBackToServiceThenDefault(t *testing.T) {
	app := &App{Tunable: rooms.DefaultConfig()}
	assert.NotZero(t, app.effectiveStrokeThresh(0))

	app.Service = &rooms.ServiceConfig{StrokeThresh: 7.5}
	assert.Equal(t, 7.5, app.effectiveStrokeThresh(0))
}

func TestToIdentifyResponse(t *testing.T) {
	found := []rooms.Room{{X: 0, Y: 0, W: 10, H: 5}}
	resp := toIdentifyResponse(found)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, [4]float64{0, 0, 10, 5}, resp.Rooms[0].BBox)
}
