// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	GalaSwap  GalaSwapConfig  `mapstructure:"galaswap"`
	Exchange  ExchangeConfig  `mapstructure:"exchange"`
	Arbitrage ArbitrageConfig `mapstructure:"arbitrage"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	DryRun      bool   `mapstructure:"dry_run"`
}

// GalaSwapConfig holds GalaSwap DEX API configuration.
type GalaSwapConfig struct {
	GatewayURL        string        `mapstructure:"gateway_url"`
	DexBackendURL     string        `mapstructure:"dex_backend_url"`
	BundlerURL        string        `mapstructure:"bundler_url"`
	WalletAddress     string        `mapstructure:"wallet_address"`
	PrivateKey        string        `mapstructure:"private_key"`
	FeeTiers          []int         `mapstructure:"fee_tiers"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
}

// ExchangeConfig holds centralized exchange API configuration.
type ExchangeConfig struct {
	RESTURL           string        `mapstructure:"rest_url"`
	WebSocketURL      string        `mapstructure:"websocket_url"`
	APIKey            string        `mapstructure:"api_key"`
	APISecret         string        `mapstructure:"api_secret"`
	QuoteSymbol       string        `mapstructure:"quote_symbol"` // registry symbol of the quote currency
	FeeMode           string        `mapstructure:"fee_mode"`     // maker or taker
	MakerFeeBps       float64       `mapstructure:"maker_fee_bps"`
	TakerFeeBps       float64       `mapstructure:"taker_fee_bps"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
	StaleTimeout      time.Duration `mapstructure:"stale_timeout"`
}

// MakerFeeRate returns the maker fee as a decimal fraction.
func (c *ExchangeConfig) MakerFeeRate() decimal.Decimal {
	return decimal.NewFromFloat(c.MakerFeeBps).Div(decimal.NewFromInt(10000))
}

// TakerFeeRate returns the taker fee as a decimal fraction.
func (c *ExchangeConfig) TakerFeeRate() decimal.Decimal {
	return decimal.NewFromFloat(c.TakerFeeBps).Div(decimal.NewFromInt(10000))
}

// ActiveFeeRate returns the fee rate selected by fee_mode.
func (c *ExchangeConfig) ActiveFeeRate() decimal.Decimal {
	if strings.EqualFold(c.FeeMode, "maker") {
		return c.MakerFeeRate()
	}
	return c.TakerFeeRate()
}

// ArbitrageConfig holds opportunity search and execution configuration.
type ArbitrageConfig struct {
	Pairs                []string      `mapstructure:"pairs"`
	TradeSizes           []float64     `mapstructure:"trade_sizes"`
	MinProfit            float64       `mapstructure:"min_profit"`
	LossTolerance        float64       `mapstructure:"loss_tolerance"`
	GasFee               float64       `mapstructure:"gas_fee"`
	MaxPositionUSD       float64       `mapstructure:"max_position_usd"`
	TickInterval         time.Duration `mapstructure:"tick_interval"`
	BreakerMaxFailures   int           `mapstructure:"breaker_max_failures"`
	BreakerRetryInterval time.Duration `mapstructure:"breaker_retry_interval"`
}

// GasFeeDecimal returns the fixed per-trade gas estimate in source units.
func (c *ArbitrageConfig) GasFeeDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.GasFee)
}

// MaxPositionUSDDecimal returns the per-trade notional cap.
func (c *ArbitrageConfig) MaxPositionUSDDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.MaxPositionUSD)
}

// TradeSizesDecimal returns trade sizes as decimal.Decimal slice.
func (c *ArbitrageConfig) TradeSizesDecimal() []decimal.Decimal {
	result := make([]decimal.Decimal, len(c.TradeSizes))
	for i, s := range c.TradeSizes {
		result[i] = decimal.NewFromFloat(s)
	}
	return result
}

// MinProfitDecimal returns the profit threshold as decimal.Decimal.
func (c *ArbitrageConfig) MinProfitDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.MinProfit)
}

// LossToleranceDecimal returns the loss tolerance as decimal.Decimal.
func (c *ArbitrageConfig) LossToleranceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.LossTolerance)
}

// StorageConfig holds trade history storage configuration.
type StorageConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// AlertsConfig holds webhook alerting configuration.
type AlertsConfig struct {
	WebhookURL  string        `mapstructure:"webhook_url"`
	MinInterval time.Duration `mapstructure:"min_interval"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
	HealthPort     int    `mapstructure:"health_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("ARB")
	v.AutomaticEnv()

	// Bind env vars to config keys
	bindEnvVars(v)

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "ARB_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "ARB_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "ARB_LOG_LEVEL", "LOG_LEVEL")
	v.BindEnv("app.dry_run", "ARB_DRY_RUN")

	// GalaSwap
	v.BindEnv("galaswap.gateway_url", "ARB_GALASWAP_GATEWAY_URL", "GALASWAP_GATEWAY_URL")
	v.BindEnv("galaswap.dex_backend_url", "ARB_GALASWAP_DEX_URL", "GALASWAP_DEX_URL")
	v.BindEnv("galaswap.bundler_url", "ARB_GALASWAP_BUNDLER_URL", "GALASWAP_BUNDLER_URL")
	v.BindEnv("galaswap.wallet_address", "ARB_GALASWAP_WALLET", "GALASWAP_WALLET_ADDRESS")
	v.BindEnv("galaswap.private_key", "ARB_GALASWAP_PRIVATE_KEY", "GALASWAP_PRIVATE_KEY")

	// Exchange
	v.BindEnv("exchange.rest_url", "ARB_EXCHANGE_REST_URL", "EXCHANGE_REST_URL")
	v.BindEnv("exchange.websocket_url", "ARB_EXCHANGE_WS_URL", "EXCHANGE_WS_URL")
	v.BindEnv("exchange.api_key", "ARB_EXCHANGE_API_KEY", "EXCHANGE_API_KEY")
	v.BindEnv("exchange.api_secret", "ARB_EXCHANGE_API_SECRET", "EXCHANGE_API_SECRET")
	v.BindEnv("exchange.quote_symbol", "ARB_EXCHANGE_QUOTE_SYMBOL")
	v.BindEnv("exchange.fee_mode", "ARB_EXCHANGE_FEE_MODE")

	// Arbitrage
	v.BindEnv("arbitrage.pairs", "ARB_PAIRS")
	v.BindEnv("arbitrage.min_profit", "ARB_MIN_PROFIT")
	v.BindEnv("arbitrage.loss_tolerance", "ARB_LOSS_TOLERANCE")
	v.BindEnv("arbitrage.tick_interval", "ARB_TICK_INTERVAL")

	// Storage
	v.BindEnv("storage.enabled", "ARB_STORAGE_ENABLED")
	v.BindEnv("storage.path", "ARB_STORAGE_PATH")

	// Alerts
	v.BindEnv("alerts.webhook_url", "ARB_ALERT_WEBHOOK_URL", "ALERT_WEBHOOK_URL")

	// Telemetry
	v.BindEnv("telemetry.enabled", "ARB_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "ARB_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "ARB_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "trading-bot-galaswap")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.dry_run", false)

	// GalaSwap defaults
	v.SetDefault("galaswap.gateway_url", "https://gateway-mainnet.galachain.com")
	v.SetDefault("galaswap.dex_backend_url", "https://dex-backend-prod1.defi.gala.com")
	v.SetDefault("galaswap.bundler_url", "https://bundle-backend-prod1.defi.gala.com")
	v.SetDefault("galaswap.fee_tiers", []int{500, 3000, 10000})
	v.SetDefault("galaswap.requests_per_minute", 120)
	v.SetDefault("galaswap.request_timeout", "10s")

	// Exchange defaults
	v.SetDefault("exchange.rest_url", "https://api.binance.com")
	v.SetDefault("exchange.websocket_url", "wss://stream.binance.com:9443")
	v.SetDefault("exchange.quote_symbol", "GUSDT")
	v.SetDefault("exchange.fee_mode", "taker")
	v.SetDefault("exchange.maker_fee_bps", 10)
	v.SetDefault("exchange.taker_fee_bps", 10)
	v.SetDefault("exchange.requests_per_minute", 1200)
	v.SetDefault("exchange.stale_timeout", "5s")

	// Arbitrage defaults
	v.SetDefault("arbitrage.pairs", []string{"GALA-GUSDT"})
	v.SetDefault("arbitrage.trade_sizes", []float64{100, 500, 1000, 5000})
	v.SetDefault("arbitrage.min_profit", 1.0)
	v.SetDefault("arbitrage.loss_tolerance", 0)
	v.SetDefault("arbitrage.gas_fee", 1)
	v.SetDefault("arbitrage.max_position_usd", 500)
	v.SetDefault("arbitrage.tick_interval", "30s")
	v.SetDefault("arbitrage.breaker_max_failures", 3)
	v.SetDefault("arbitrage.breaker_retry_interval", "10m")

	// Storage defaults
	v.SetDefault("storage.enabled", true)
	v.SetDefault("storage.path", "trades.db")

	// Alerts defaults
	v.SetDefault("alerts.min_interval", "1m")

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "trading-bot-galaswap")
	v.SetDefault("telemetry.prometheus_port", 9090)
	v.SetDefault("telemetry.health_port", 8081)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.GalaSwap.GatewayURL == "" {
		return fmt.Errorf("galaswap.gateway_url is required")
	}
	if !c.App.DryRun && c.GalaSwap.WalletAddress == "" {
		return fmt.Errorf("galaswap.wallet_address is required unless dry_run is set")
	}
	if c.GalaSwap.WalletAddress != "" && !strings.HasPrefix(c.GalaSwap.WalletAddress, "eth|") &&
		!strings.HasPrefix(c.GalaSwap.WalletAddress, "client|") {
		return fmt.Errorf("invalid galaswap.wallet_address: %s (expected eth| or client| prefix)", c.GalaSwap.WalletAddress)
	}
	if mode := strings.ToLower(c.Exchange.FeeMode); mode != "maker" && mode != "taker" {
		return fmt.Errorf("invalid exchange.fee_mode: %s (expected maker or taker)", c.Exchange.FeeMode)
	}
	if len(c.Arbitrage.Pairs) == 0 {
		return fmt.Errorf("arbitrage.pairs cannot be empty")
	}
	if len(c.Arbitrage.TradeSizes) == 0 {
		return fmt.Errorf("arbitrage.trade_sizes cannot be empty")
	}
	prev := 0.0
	for _, s := range c.Arbitrage.TradeSizes {
		if s <= 0 {
			return fmt.Errorf("arbitrage.trade_sizes must be positive, got %v", s)
		}
		if s <= prev {
			return fmt.Errorf("arbitrage.trade_sizes must be strictly ascending")
		}
		prev = s
	}
	if c.Arbitrage.LossTolerance < 0 {
		return fmt.Errorf("arbitrage.loss_tolerance cannot be negative")
	}
	if c.Arbitrage.TickInterval <= 0 {
		return fmt.Errorf("arbitrage.tick_interval must be positive")
	}
	if c.Arbitrage.BreakerMaxFailures <= 0 {
		return fmt.Errorf("arbitrage.breaker_max_failures must be positive")
	}
	for _, tier := range c.GalaSwap.FeeTiers {
		if tier <= 0 || tier >= 1_000_000 {
			return fmt.Errorf("invalid galaswap fee tier: %d", tier)
		}
	}
	return nil
}
