// Package publish pushes confirmed gesture snapshots to an MQTT broker
// so other systems can react to recognized numbers.
package publish

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/ayusman/shouzhi/internal/gesture"
)

// Publisher publishes gesture snapshots to an MQTT topic.
type Publisher struct {
	client mqtt.Client
	topic  string
}

// New connects to the broker and returns a ready Publisher.
// If clientID is empty a unique one is generated.
func New(broker, topic, clientID string) (*Publisher, error) {
	if clientID == "" {
		clientID = "shouzhi-" + uuid.New().String()
	}

	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID(clientID)
	opts.SetKeepAlive(2 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetConnectTimeout(30 * time.Second)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(c mqtt.Client) {
		log.Printf("Connected to MQTT broker %s", broker)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", broker, token.Error())
	}

	return &Publisher{client: client, topic: topic}, nil
}

// Publish sends a confirmed snapshot as JSON. Delivery is fire-and-forget
// at QoS 0; a broker outage must not stall the recognition loop.
func (p *Publisher) Publish(snap gesture.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	p.client.Publish(p.topic, 0, false, payload)
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
