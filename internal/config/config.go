package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Values are read from a YAML file
// and may be overridden by environment variables.
type Config struct {
	// Environment is either "development" or "production".
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	HTTP struct {
		Addr              string        `env:"HTTP_ADDR"                env-default:":8080"    yaml:"addr"`
		ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT"        env-default:"1m"       yaml:"readTimeout"`
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"      yaml:"readHeaderTimeout"`
		WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT"       env-default:"2m"       yaml:"writeTimeout"`
		IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT"        env-default:"2m"       yaml:"idleTimeout"`
		// RequestTimeout bounds the time spent handling a single request.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT"  env-default:"10s"      yaml:"requestTimeout"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0"        yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH"     env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	Database struct {
		Username           string        `env:"DATABASE_USERNAME"                 env-default:"myuser"     yaml:"username"`
		Password           string        `env:"DATABASE_PASSWORD"                 env-default:"mypassword" yaml:"password"` //nolint: lll
		Host               string        `env:"DATABASE_HOST"                     env-default:"localhost"  yaml:"host"`
		Port               int           `env:"DATABASE_PORT"                     env-default:"5432"       yaml:"port"`
		SslMode            string        `env:"DATABASE_SSL_MODE"                 env-default:"disable"    yaml:"sslMode"`
		DatabaseName       string        `env:"DATABASE_NAME"                     env-default:"civic"      yaml:"name"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS"     env-default:"10"         yaml:"maxOpenConnections"` //nolint: lll
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS"     env-default:"8"          yaml:"maxIdleConnections"` //nolint: lll
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME"  env-default:"3m"         yaml:"connMaxLifetime"`    //nolint: lll
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m"         yaml:"connMaxIdleTime"`    //nolint: lll
	} `yaml:"database"`

	Redis struct {
		// URL is a redis:// connection string. Redis-backed features are
		// disabled when it is empty, so it has no default.
		URL          string        `env:"REDIS_URL"            yaml:"url"`
		PoolSize     int           `env:"REDIS_POOL_SIZE"      env-default:"10"                       yaml:"poolSize"`
		MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"                        yaml:"minIdleConns"`
		DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT"   env-default:"5s"                       yaml:"dialTimeout"`
		ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT"   env-default:"3s"                       yaml:"readTimeout"`
		WriteTimeout time.Duration `env:"REDIS_WRITE_TIMEOUT"  env-default:"3s"                       yaml:"writeTimeout"`
	} `yaml:"redis"`

	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command to mint tokens.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	Identity struct {
		// MaxBatchSize caps both synchronous number generation and batch sizes.
		MaxBatchSize int `env:"IDENTITY_MAX_BATCH_SIZE" env-default:"1000" yaml:"maxBatchSize"`
		// MaxAttempts is how many times a batch job is tried before it is marked failed.
		MaxAttempts int `env:"IDENTITY_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// GenerationAttempts bounds retries when a generated number is already taken.
		GenerationAttempts int `env:"IDENTITY_GENERATION_ATTEMPTS" env-default:"10" yaml:"generationAttempts"`
	} `yaml:"identity"`

	RateLimit struct {
		// Disabled turns limiting off. Zero values are refilled from defaults,
		// so the flag is phrased so that false is the default.
		Disabled bool `env:"RATE_LIMIT_DISABLED" yaml:"disabled"`
		// TrustedProxies lists addresses or CIDR ranges whose X-Forwarded-For
		// header is believed.
		TrustedProxies []string `env:"RATE_LIMIT_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies"`
		// Backend is "memory" or "redis".
		Backend  string        `env:"RATE_LIMIT_BACKEND"  env-default:"memory" yaml:"backend"`
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"60"     yaml:"requests"`
		Window   time.Duration `env:"RATE_LIMIT_WINDOW"   env-default:"1m"     yaml:"window"`
	} `yaml:"rateLimit"`

	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
	} `yaml:"worker"`

	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the YAML file at configPath, applies environment overrides and
// defaults, and returns the result.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv builds the config from environment variables and defaults alone.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
