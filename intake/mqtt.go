// Package intake adapts the room-identification pipeline to an MQTT
// push model: a front-end worker that turns architectural drawings into
// vector documents publishes each one to a topic here, and this package
// decodes, identifies, and republishes the resulting rooms. This suits
// batch/headless floor-plan ingestion, where the producer can't be made
// to call an HTTP endpoint directly.
package intake

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/kwv/roomtrace/rooms"
	"github.com/kwv/roomtrace/svgvector"
)

// Config configures the MQTT intake adapter.
type Config struct {
	Broker       string
	ClientID     string
	Username     string
	Password     string
	InputTopic   string
	ResultTopic  string
	StrokeThresh float64
	RoomsConfig  rooms.Config
}

// Client owns one MQTT connection dedicated to the identify-on-message
// pipeline. Each inbound message triggers exactly one isolated
// rooms.Identify call; no state is shared across messages.
type Client struct {
	client mqtt.Client
	cfg    Config
}

// Connect dials the broker and subscribes to cfg.InputTopic. It blocks
// until the initial connection succeeds or the timeout elapses.
func Connect(cfg Config) (*Client, error) {
	if cfg.Broker == "" {
		return nil, fmt.Errorf("intake: no broker configured")
	}
	if cfg.InputTopic == "" || cfg.ResultTopic == "" {
		return nil, fmt.Errorf("intake: input and result topics are required")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "roomtrace-intake"
	}
	opts.SetClientID(clientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetCleanSession(false)

	c := &Client{cfg: cfg}
	opts.SetOnConnectHandler(c.onConnect)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		log.Printf("intake: MQTT connection interrupted (%v), auto-reconnect will retry", err)
	})

	c.client = mqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("intake: connection to %s timed out", cfg.Broker)
	}
	if token.Error() != nil {
		return nil, fmt.Errorf("intake: connecting to %s: %w", cfg.Broker, token.Error())
	}
	return c, nil
}

func (c *Client) onConnect(client mqtt.Client) {
	log.Printf("intake: connected, subscribing to %s", c.cfg.InputTopic)
	token := client.Subscribe(c.cfg.InputTopic, 0, c.handleMessage)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		log.Printf("intake: error subscribing to %s: %v", c.cfg.InputTopic, token.Error())
	}
}

// roomsResponse is the wire shape published to the result topic.
type roomsResponse struct {
	Rooms []roomBBox `json:"rooms"`
}

type roomBBox struct {
	BBox [4]float64 `json:"bbox"`
}

func (c *Client) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("intake: received vector document (topic=%s, size=%d bytes)", msg.Topic(), len(msg.Payload()))

	strokeThresh := c.cfg.StrokeThresh
	if strokeThresh == 0 {
		strokeThresh = svgvector.DefaultStrokeThresh
	}

	polylines, err := svgvector.Parse(msg.Payload(), strokeThresh)
	if err != nil {
		log.Printf("intake: failed to parse vector document: %v", err)
		return
	}

	found, err := rooms.Identify(polylines, c.cfg.RoomsConfig)
	if err != nil {
		log.Printf("intake: identify failed: %v", err)
		return
	}

	resp := roomsResponse{Rooms: make([]roomBBox, len(found))}
	for i, r := range found {
		resp.Rooms[i] = roomBBox{BBox: r.BBox()}
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		log.Printf("intake: failed to marshal result: %v", err)
		return
	}

	token := client.Publish(c.cfg.ResultTopic, 0, false, payload)
	if token.WaitTimeout(2*time.Second) && token.Error() != nil {
		log.Printf("intake: failed to publish result to %s: %v", c.cfg.ResultTopic, token.Error())
		return
	}
	log.Printf("intake: published %d room(s) to %s", len(found), c.cfg.ResultTopic)
}

// Disconnect closes the MQTT connection, waiting up to 250ms for
// in-flight messages to flush.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}
