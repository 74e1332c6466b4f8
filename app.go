package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/kwv/roomtrace/intake"
	"github.com/kwv/roomtrace/rooms"
	"github.com/kwv/roomtrace/svgvector"
)

// App encapsulates the application state and dependencies: resolved
// config plus a Run* method per CLI mode.
type App struct {
	Service *rooms.ServiceConfig
	Tunable rooms.Config
}

// NewApp loads configFile, if given, and resolves the pipeline tunables.
// An empty configFile runs entirely on documented defaults.
func NewApp(configFile string) (*App, error) {
	a := &App{Tunable: rooms.DefaultConfig()}
	if configFile == "" {
		return a, nil
	}
	svc, err := rooms.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	a.Service = svc
	a.Tunable = svc.ResolveTunables()
	return a, nil
}

// effectiveStrokeThresh prefers an explicit CLI override, then the loaded
// service config, then svgvector's documented default.
func (a *App) effectiveStrokeThresh(override float64) float64 {
	if override != 0 {
		return override
	}
	if a.Service != nil && a.Service.StrokeThresh != 0 {
		return a.Service.StrokeThresh
	}
	return svgvector.DefaultStrokeThresh
}

func (a *App) readPolylines(path string, strokeOverride float64) ([]rooms.Polyline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return svgvector.Parse(data, a.effectiveStrokeThresh(strokeOverride))
}

// identifyResponse is the wire shape shared by the one-shot CLI mode,
// the HTTP surface, and the MQTT intake adapter.
type identifyResponse struct {
	Rooms []roomJSON `json:"rooms"`
}

type roomJSON struct {
	BBox [4]float64 `json:"bbox"`
}

func toIdentifyResponse(found []rooms.Room) identifyResponse {
	resp := identifyResponse{Rooms: make([]roomJSON, len(found))}
	for i, r := range found {
		resp.Rooms[i] = roomJSON{BBox: r.BBox()}
	}
	return resp
}

// RunIdentifyOnce parses path and prints the identified rooms as JSON to
// stdout.
func (a *App) RunIdentifyOnce(path string, strokeOverride float64) {
	polylines, err := a.readPolylines(path, strokeOverride)
	if err != nil {
		log.Fatalf("roomtrace: %v", err)
	}

	found, err := rooms.Identify(polylines, a.Tunable)
	if err != nil {
		log.Fatalf("roomtrace: identify failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toIdentifyResponse(found)); err != nil {
		log.Fatalf("roomtrace: encoding result: %v", err)
	}
}

// RunRender parses path, identifies rooms, and writes a debug PNG overlay
// of the wall segments plus detected room boxes to outputFile.
func (a *App) RunRender(path, outputFile string, strokeOverride float64) {
	polylines, err := a.readPolylines(path, strokeOverride)
	if err != nil {
		log.Fatalf("roomtrace: %v", err)
	}

	segs := rooms.Flatten(polylines)
	found, err := rooms.Identify(polylines, a.Tunable)
	if err != nil {
		log.Fatalf("roomtrace: identify failed: %v", err)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		log.Fatalf("roomtrace: creating %s: %v", outputFile, err)
	}
	defer f.Close()

	viz := rooms.NewVisualizer(segs, found)
	if err := viz.RenderPNG(f); err != nil {
		log.Fatalf("roomtrace: rendering PNG: %v", err)
	}
	fmt.Printf("wrote %s (%d wall segment(s), %d room(s))\n", outputFile, len(segs), len(found))
}

// RunServe runs the HTTP identify surface until interrupted.
func (a *App) RunServe(addr string) {
	if a.Service != nil && a.Service.HTTP.ListenAddr != "" {
		addr = a.Service.HTTP.ListenAddr
	}
	srv := newHTTPServer(a)
	log.Printf("roomtrace: HTTP surface listening on %s", addr)
	if err := http.ListenAndServe(addr, srv); err != nil {
		log.Fatalf("roomtrace: HTTP server: %v", err)
	}
}

// RunMQTTIntake connects the MQTT intake adapter and blocks until
// interrupted.
func (a *App) RunMQTTIntake() {
	if a.Service == nil {
		log.Fatal("roomtrace: -mqtt-intake requires -config with an mqtt section")
	}
	cfg := intake.Config{
		Broker:       a.Service.MQTT.Broker,
		ClientID:     a.Service.MQTT.ClientID,
		Username:     a.Service.MQTT.Username,
		Password:     a.Service.MQTT.Password,
		InputTopic:   a.Service.MQTT.InputTopic,
		ResultTopic:  a.Service.MQTT.ResultTopic,
		StrokeThresh: a.Service.StrokeThresh,
		RoomsConfig:  a.Tunable,
	}
	client, err := intake.Connect(cfg)
	if err != nil {
		log.Fatalf("roomtrace: %v", err)
	}
	defer client.Disconnect()

	log.Printf("roomtrace: MQTT intake running, subscribed to %s", cfg.InputTopic)
	select {}
}
