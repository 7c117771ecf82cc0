package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	StoreBackend                  string        `mapstructure:"STORE_BACKEND"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	RedisAddr                     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword                 string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB                       int           `mapstructure:"REDIS_DB"`
	RedisKeyPrefix                string        `mapstructure:"REDIS_KEY_PREFIX"`
	SimulatedLatency              time.Duration `mapstructure:"SIMULATED_LATENCY"`
	AdminPassword                 string        `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret                     string        `mapstructure:"JWT_SECRET"`
	PricePerAdult                 int           `mapstructure:"PRICE_PER_ADULT"`
	PricePerChild                 int           `mapstructure:"PRICE_PER_CHILD"`
	UPIID                         string        `mapstructure:"UPI_ID"`
	MerchantName                  string        `mapstructure:"MERCHANT_NAME"`
	QREndpoint                    string        `mapstructure:"QR_ENDPOINT"`
	CalendarTitle                 string        `mapstructure:"CALENDAR_TITLE"`
	CalendarDetails               string        `mapstructure:"CALENDAR_DETAILS"`
	CalendarLocation              string        `mapstructure:"CALENDAR_LOCATION"`
	EnableCORS                    bool          `mapstructure:"ENABLE_CORS"`
	CORSOrigins                   []string      `mapstructure:"CORS_ORIGINS"`
	BookingRatePerMinute          int           `mapstructure:"BOOKING_RATE_PER_MINUTE"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	cfg, err := load(viper.New())
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	return cfg
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_BACKEND", "sqlite")
	v.SetDefault("DATABASE_PATH", "tour.db")
	v.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "")
	v.SetDefault("SIMULATED_LATENCY", "0s")
	v.SetDefault("ADMIN_PASSWORD", "hamsika-admin")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("PRICE_PER_ADULT", 22000)
	v.SetDefault("PRICE_PER_CHILD", 15000)
	v.SetDefault("UPI_ID", "9493936084@upi")
	v.SetDefault("MERCHANT_NAME", "HamsikaTravels")
	v.SetDefault("QR_ENDPOINT", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("CALENDAR_TITLE", "Thailand Group Tour with Hamsika Travels")
	v.SetDefault("CALENDAR_DETAILS", "Premium Group Tour Package to Thailand. Visit Pattaya and Bangkok.")
	v.SetDefault("CALENDAR_LOCATION", "Thailand")
	v.SetDefault("ENABLE_CORS", false)
	v.SetDefault("CORS_ORIGINS", []string{"*"})
	v.SetDefault("BOOKING_RATE_PER_MINUTE", 10)
	v.SetDefault("DISCORD_BOT_TOKEN", "")
	v.SetDefault("DISCORD_NOTIFICATIONS_CHANNEL_ID", "")

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.JWTSecret == "" {
		config.JWTSecret = config.AdminPassword
	}

	return &config, nil
}
