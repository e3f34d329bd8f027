package config

import (
	"flag"
	"os"
	"strings"
)

type Config struct {
	RunAddress   string
	DatabaseURI  string
	KafkaBrokers []string
	KafkaTopic   string
}

func New() *Config {
	cfg := &Config{}
	var brokers string

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "server address and port")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI (empty runs on in-memory stores)")
	flag.StringVar(&brokers, "b", "", "kafka broker addresses, comma separated (empty disables events)")
	flag.StringVar(&cfg.KafkaTopic, "t", "payment-status", "kafka topic for payment status events")
	flag.Parse()

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", cfg.KafkaTopic)
	brokers = getEnv("KAFKA_BROKERS", brokers)

	if brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
