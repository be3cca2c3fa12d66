package events

import (
	"fmt"

	"tramondo/pkg/kafka"
	kafka_config "tramondo/pkg/kafka/config"
	kafka_middleware "tramondo/pkg/kafka/middleware"
	"tramondo/pkg/logger"
)

// FromConfig returns a Kafka-backed publisher, or Noop when no brokers are
// configured. The returned close func is never nil.
func FromConfig(cfg *kafka_config.Config, source string, log *logger.Logger) (Publisher, func() error, error) {
	if cfg == nil || !cfg.Enabled() {
		log.Info("Event publishing disabled, no Kafka brokers configured")
		return Noop{}, func() error { return nil }, nil
	}

	producer, err := kafka.NewProducer(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	if cfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(log, producer.Topic()))
	}

	log.Info("Event publishing enabled", "brokers", cfg.Brokers, "topic", producer.Topic())
	return NewKafkaPublisher(producer, source, log), producer.Close, nil
}
