package cmd

import "time"

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	PredictServiceURL        string
	SubstitutionServiceURL   string
	DecisionServiceURL       string
	GatewayTimeout           time.Duration
	KafkaHost                string
	KafkaOrderFinalizedTopic string
	LogFilePath              string
}
