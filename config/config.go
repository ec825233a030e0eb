package config

import (
	"os"
	"time"
)

// defaultCollectionPrefix namespaces every Firestore collection the
// platform writes to.
const defaultCollectionPrefix = "trading_system_"

// requiredEnvVars are validated during New. Checked in order; every
// missing name is reported, not just the first.
var requiredEnvVars = []string{
	"FIREBASE_CREDENTIALS_PATH",
	"FIREBASE_DATABASE_URL",
}

// Config aggregates all parameter groups for the trading system. It is
// constructed once at startup and treated as read-only afterwards.
type Config struct {
	Data       DataConfig
	Model      ModelConfig
	Trading    TradingConfig
	Firebase   FirebaseConfig
	Monitoring MonitoringConfig
}

// DataConfig holds data ingestion and feature engineering parameters.
type DataConfig struct {
	DataSources         []string
	TimeIntervals       []string
	TechnicalIndicators []string
	LookbackWindow      int
	SeqLength           int // sequence length for sequence models
	FirebaseCollection  string
	CacheTTL            time.Duration
}

// ModelConfig holds hyperparameters for the SSL pretraining stage and the
// RL agent, plus model artifact storage identity.
type ModelConfig struct {
	// Self-supervised pretraining
	SSLHiddenDim      int
	SSLDropout        float64
	SSLLearningRate   float64
	SSLBatchSize      int
	SSLPretrainEpochs int

	// Reinforcement learning agent
	RLEnvName          string
	RLLearningRate     float64
	RLGamma            float64
	RLBufferSize       int
	RLBatchSize        int
	RLTargetUpdateFreq int

	// Model storage
	ModelBucket    string
	CheckpointFreq int // steps between checkpoints
}

// TradingConfig holds execution and risk management parameters.
type TradingConfig struct {
	// Risk management (fractions of portfolio value)
	MaxPositionSize float64
	StopLossPct     float64
	TakeProfitPct   float64
	MaxDrawdownPct  float64

	// Execution
	OrderTimeout  time.Duration
	RetryAttempts int

	// Portfolio
	InitialCapital     float64
	AllocationStrategy string
}

// FirebaseConfig identifies the external persistence backend.
type FirebaseConfig struct {
	CredentialsPath  string
	DatabaseURL      string
	CollectionPrefix string
}

// MonitoringConfig holds alerting and logging parameters.
type MonitoringConfig struct {
	LogLevel               string
	MetricsUpdateInterval  time.Duration
	DrawdownAlertThreshold float64
	MaxLatency             time.Duration
	MinDataQualityScore    float64
}

// New constructs every parameter group and validates that all required
// environment variables are set. On failure it returns a *MissingEnvError
// naming every missing variable. A Config that constructs without error
// can never fail a later read.
func New() (*Config, error) {
	cfg := &Config{
		Data:       NewDataConfig(),
		Model:      NewModelConfig(),
		Trading:    NewTradingConfig(),
		Firebase:   NewFirebaseConfig(),
		Monitoring: NewMonitoringConfig(),
	}

	if err := validateEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewDataConfig returns the data ingestion defaults. Slice fields are
// allocated fresh on every call so no two configs share backing arrays.
func NewDataConfig() DataConfig {
	return DataConfig{
		DataSources:         []string{"binance", "kraken", "coinbase"},
		TimeIntervals:       []string{"1m", "5m", "15m", "1h", "4h", "1d"},
		TechnicalIndicators: []string{"RSI", "MACD", "BBANDS", "ATR", "OBV"},
		LookbackWindow:      100,
		SeqLength:           50,
		FirebaseCollection:  "market_data",
		CacheTTL:            5 * time.Minute,
	}
}

// NewModelConfig returns the SSL and RL hyperparameter defaults.
func NewModelConfig() ModelConfig {
	return ModelConfig{
		SSLHiddenDim:      128,
		SSLDropout:        0.2,
		SSLLearningRate:   0.001,
		SSLBatchSize:      64,
		SSLPretrainEpochs: 100,

		RLEnvName:          "TradingEnv-v0",
		RLLearningRate:     0.0003,
		RLGamma:            0.99,
		RLBufferSize:       100000,
		RLBatchSize:        256,
		RLTargetUpdateFreq: 100,

		ModelBucket:    "trading-models",
		CheckpointFreq: 1000,
	}
}

// NewTradingConfig returns the execution and risk defaults.
func NewTradingConfig() TradingConfig {
	return TradingConfig{
		MaxPositionSize: 0.1,
		StopLossPct:     0.02,
		TakeProfitPct:   0.05,
		MaxDrawdownPct:  0.15,

		OrderTimeout:  30 * time.Second,
		RetryAttempts: 3,

		InitialCapital:     100000.0,
		AllocationStrategy: "risk_parity",
	}
}

// NewFirebaseConfig resolves the persistence backend identity from the
// environment, falling back to defaults when unset.
func NewFirebaseConfig() FirebaseConfig {
	return FirebaseConfig{
		CredentialsPath:  getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-credentials.json"),
		DatabaseURL:      getEnv("FIREBASE_DATABASE_URL", ""),
		CollectionPrefix: defaultCollectionPrefix,
	}
}

// NewMonitoringConfig returns the alerting and logging defaults.
func NewMonitoringConfig() MonitoringConfig {
	return MonitoringConfig{
		LogLevel:               "info",
		MetricsUpdateInterval:  60 * time.Second,
		DrawdownAlertThreshold: 0.1,
		MaxLatency:             time.Second,
		MinDataQualityScore:    0.8,
	}
}

// StateCollection returns the collection holding system state. Computed
// from CollectionPrefix on each call, never cached.
func (c FirebaseConfig) StateCollection() string {
	return c.CollectionPrefix + "state"
}

// TradesCollection returns the collection holding executed trades.
func (c FirebaseConfig) TradesCollection() string {
	return c.CollectionPrefix + "trades"
}

// MetricsCollection returns the collection holding performance metrics.
func (c FirebaseConfig) MetricsCollection() string {
	return c.CollectionPrefix + "metrics"
}

// validateEnv checks the process environment for every required variable
// and collects all missing names before failing.
func validateEnv() error {
	var missing []string
	for _, name := range requiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingEnvError{Missing: missing}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
