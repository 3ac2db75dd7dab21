package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost         string
	KafkaClientID     string
	KafkaWriteTimeout time.Duration

	RedeliverySchedule    string
	RedeliveryBatchSize   int
	RedeliveryMaxAttempts int
}
