package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"fleet-maintenance-manager/internal/logger"
	pkgmqtt "fleet-maintenance-manager/pkg/mqtt"

	"go.uber.org/zap"
)

// MQTTIngestionConfig describes the odometer topic and connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig  *pkgmqtt.Config
	OdometerTopic string
	QoS           byte
}

// MQTTIngestionClient wires MQTT messages into the odometer processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu      sync.Mutex
	started bool
}

func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if cfg.OdometerTopic == "" {
		return nil, errors.New("odometer topic is required")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	client := pkgmqtt.NewClient(cfg.ClientConfig)
	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    client,
		processor: processor,
	}, nil
}

// Start establishes the MQTT connection and subscribes to the odometer topic.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	if err := c.client.Subscribe(c.cfg.OdometerTopic, c.cfg.QoS, c.handleOdometerMessage); err != nil {
		c.client.Disconnect()
		return fmt.Errorf("subscribe failed for topic %s: %w", c.cfg.OdometerTopic, err)
	}

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if err := c.client.Unsubscribe(c.cfg.OdometerTopic); err != nil {
		logger.Warn("Failed to unsubscribe from MQTT topic",
			zap.String("topic", c.cfg.OdometerTopic),
			zap.Error(err),
		)
	}

	c.client.Disconnect()
	c.started = false
}

func (c *MQTTIngestionClient) handleOdometerMessage(topic string, payload []byte) {
	msg, err := ParseOdometerMessage(topic, payload)
	if err != nil {
		logger.Warn("Invalid odometer payload",
			zap.String("topic", topic),
			zap.Error(err),
		)
		return
	}

	c.processor.Process(msg)
}
