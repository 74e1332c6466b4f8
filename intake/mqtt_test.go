package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_RequiresBroker(t *testing.T) {
	_, err := Connect(Config{InputTopic: "in", ResultTopic: "out"})
	assert.Error(t, err)
}

func TestConnect_RequiresTopics(t *testing.T) {
	_, err := Connect(Config{Broker: "tcp://localhost:1883"})
	assert.Error(t, err)
}
