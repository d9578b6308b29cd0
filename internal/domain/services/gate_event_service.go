package services

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/infrastructure/config"
	"gateapp-http-service/pkg/logger"
)

// MQTT topics for gate-side consumers
const (
	TopicDecision = "gateapp/events/decision"
	TopicCheckout = "gateapp/events/checkout"
	TopicPass     = "gateapp/events/pass"
)

// InterfaceGateEventService publishes visitor events to the gate devices.
// Publishing is best effort: a broker outage is logged, never surfaced to the
// request that triggered the event.
type InterfaceGateEventService interface {
	PublishDecision(visitorID string, source models.VisitorSource, action DecisionAction, operator string)
	PublishCheckout(visitorID, date string)
	PublishPassIssued(visitorID, token string)
	Close()
}

// GateEventService implements InterfaceGateEventService over MQTT
type GateEventService struct {
	client   mqtt.Client
	qos      byte
	retained bool
	enabled  bool
}

// NewGateEventService connects to the MQTT broker. An empty broker URL
// disables publishing, which keeps local development runnable without a
// broker.
func NewGateEventService(cfg *config.Config) InterfaceGateEventService {
	if cfg.MQTTBrokerURL == "" {
		logger.Info("MQTT broker URL not configured, gate event publishing disabled")
		return &GateEventService{enabled: false}
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBrokerURL).
		SetClientID(cfg.MQTTClientID).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warning("MQTT connection lost: %v", err)
		})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		logger.Error("failed to connect to MQTT broker %s: %v", cfg.MQTTBrokerURL, token.Error())
		return &GateEventService{enabled: false}
	}

	logger.Info("connected to MQTT broker %s", cfg.MQTTBrokerURL)
	return &GateEventService{
		client:   client,
		qos:      byte(cfg.MQTTQoS),
		retained: cfg.MQTTRetained,
		enabled:  true,
	}
}

// PublishDecision announces an approval decision to the gates
func (s *GateEventService) PublishDecision(visitorID string, source models.VisitorSource, action DecisionAction, operator string) {
	s.publish(TopicDecision, map[string]interface{}{
		"visitor_id": visitorID,
		"source":     string(source),
		"action":     string(action),
		"operator":   operator,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishCheckout announces a day-log checkout to the gates
func (s *GateEventService) PublishCheckout(visitorID, date string) {
	s.publish(TopicCheckout, map[string]interface{}{
		"visitor_id": visitorID,
		"date":       date,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// PublishPassIssued announces a freshly issued gate pass
func (s *GateEventService) PublishPassIssued(visitorID, token string) {
	s.publish(TopicPass, map[string]interface{}{
		"visitor_id": visitorID,
		"token":      token,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// Close disconnects from the broker
func (s *GateEventService) Close() {
	if s.enabled && s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}

func (s *GateEventService) publish(topic string, payload map[string]interface{}) {
	if !s.enabled {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to encode gate event for %s: %v", topic, err)
		return
	}

	token := s.client.Publish(topic, s.qos, s.retained, data)
	go func() {
		if token.Wait() && token.Error() != nil {
			logger.Warning("failed to publish gate event to %s: %v", topic, token.Error())
		}
	}()
}
