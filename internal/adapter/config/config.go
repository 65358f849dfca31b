package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	App      *App
	Payment  *Payment
	Auth     *Auth
	Events   *Events
	Orders   *Orders
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

// Database with an empty DSN selects the in-memory store.
type Database struct {
	DSN            string        `env:"DATABASE_URI"`
	MaxConns       int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"5s"`
	MaxConnIdle    time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Payment struct {
	KeyID     string        `env:"RAZORPAY_KEY_ID"`
	KeySecret string        `env:"RAZORPAY_KEY_SECRET"`
	BaseURL   string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	Timeout   time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"10s"`
	Currency  string        `env:"CURRENCY" envDefault:"INR"`
}

type Auth struct {
	// KeyHex is a hex encoded v4 local paseto key; empty generates one per process.
	KeyHex   string        `env:"PASETO_KEY"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Events with an empty RedisAddr keeps the queue in process.
type Events struct {
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisKey      string `env:"REDIS_EVENTS_KEY" envDefault:"shopx:order-events"`
	QueueSize     int    `env:"EVENT_QUEUE_SIZE" envDefault:"256"`
	Workers       int    `env:"NOTIFY_WORKERS" envDefault:"2"`
}

type Orders struct {
	PendingTTL     time.Duration `env:"PENDING_ORDER_TTL" envDefault:"30m"`
	ExpiryInterval time.Duration `env:"EXPIRY_INTERVAL" envDefault:"1m"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var app App
	var payment Payment
	var auth Auth
	var events Events
	var orders Orders

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&app.LogLevel, "l", `info`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&auth)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&events)
	if err != nil {
		return nil, fmt.Errorf("error parsing events config: %w", err)
	}
	err = env.Parse(&orders)
	if err != nil {
		return nil, fmt.Errorf("error parsing orders config: %w", err)
	}

	if payment.KeySecret == "" && app.Mode == AppModeProduction {
		return nil, fmt.Errorf("RAZORPAY_KEY_SECRET is required in %s mode", AppModeProduction)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		App:      &app,
		Payment:  &payment,
		Auth:     &auth,
		Events:   &events,
		Orders:   &orders,
	}

	return &config, nil
}
