package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Event broker choices for EVENT_BROKER.
const (
	BrokerLog      = "log"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort               string
	LogLevel               slog.Level
	UsersServiceURL        string
	UsersServiceTimeout    time.Duration
	EventBroker            string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string
	EventQueueSize         int
	EventRelaySchedule     string
}

// ConfigFromEnv reads the configuration through getenv. Unset variables take their
// defaults; malformed ones are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	config := Config{
		HTTPPort:               env("HTTP_PORT", "8000"),
		UsersServiceURL:        env("USERS_SERVICE_URL", "http://service_users:8000"),
		EventBroker:            strings.ToLower(env("EVENT_BROKER", BrokerLog)),
		KafkaHost:              env("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: env("KAFKA_ORDER_CHANGED_TOPIC", "orders.events"),
		RabbitMQURL:            env("RABBITMQ_URL", ""),
		RabbitMQExchange:       env("RABBITMQ_EXCHANGE", "orders.events"),
		EventRelaySchedule:     env("EVENT_RELAY_SCHEDULE", "*/1 * * * * *"),
	}

	var errs []error

	if err := config.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	timeout, err := time.ParseDuration(env("USERS_SERVICE_TIMEOUT", "5s"))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("USERS_SERVICE_TIMEOUT: %w", err))
	case timeout <= 0:
		errs = append(errs, errors.New("USERS_SERVICE_TIMEOUT: must be positive"))
	}
	config.UsersServiceTimeout = timeout

	size, err := strconv.Atoi(env("EVENT_QUEUE_SIZE", "1024"))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("EVENT_QUEUE_SIZE: %w", err))
	case size < 0:
		errs = append(errs, errors.New("EVENT_QUEUE_SIZE: must not be negative"))
	}
	config.EventQueueSize = size

	switch config.EventBroker {
	case BrokerLog:
	case BrokerKafka:
		if config.KafkaHost == "" {
			errs = append(errs, errors.New("KAFKA_HOST: required when EVENT_BROKER is kafka"))
		}
	case BrokerRabbitMQ:
		if config.RabbitMQURL == "" {
			errs = append(errs, errors.New("RABBITMQ_URL: required when EVENT_BROKER is rabbitmq"))
		}
	default:
		errs = append(errs, fmt.Errorf("EVENT_BROKER: unknown broker %q", config.EventBroker))
	}

	return config, errors.Join(errs...)
}
