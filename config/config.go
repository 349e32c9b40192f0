package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Conferencing backend. AppID and Secret sign room tokens; Domain is
	// where the client is sent to redeem them. All three are required in
	// production and the secret has no default anywhere.
	MeetingAppID  string `mapstructure:"MEETING_APP_ID"`
	MeetingSecret string `mapstructure:"MEETING_SECRET"`
	MeetingDomain string `mapstructure:"MEETING_DOMAIN"`

	// Session access policy knobs. Durations are minutes/seconds as named.
	MeetingTokenTTLMinutes int `mapstructure:"MEETING_TOKEN_TTL_MINUTES"`
	MeetingClockSkewSecs   int `mapstructure:"MEETING_CLOCK_SKEW_SECONDS"`
	SessionDefaultMinutes  int `mapstructure:"SESSION_DEFAULT_MINUTES"`
	ReminderLeadMinutes    int `mapstructure:"REMINDER_LEAD_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("MEETING_APP_ID", "")
	viper.SetDefault("MEETING_SECRET", "")
	viper.SetDefault("MEETING_DOMAIN", "")
	viper.SetDefault("MEETING_TOKEN_TTL_MINUTES", 120)
	viper.SetDefault("MEETING_CLOCK_SKEW_SECONDS", 10)
	viper.SetDefault("SESSION_DEFAULT_MINUTES", 60)
	viper.SetDefault("REMINDER_LEAD_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// MeetingTokenTTL returns the configured room token lifetime.
func (c Config) MeetingTokenTTL() time.Duration {
	return time.Duration(c.MeetingTokenTTLMinutes) * time.Minute
}

// MeetingClockSkew returns the nbf backdating tolerance for room tokens.
func (c Config) MeetingClockSkew() time.Duration {
	return time.Duration(c.MeetingClockSkewSecs) * time.Second
}

// SessionDefaultDuration returns the assumed length of a session whose
// booking carries a start time but no end time.
func (c Config) SessionDefaultDuration() time.Duration {
	return time.Duration(c.SessionDefaultMinutes) * time.Minute
}

// ReminderLead returns how long before a session's effective start the
// reminder task should fire.
func (c Config) ReminderLead() time.Duration {
	return time.Duration(c.ReminderLeadMinutes) * time.Minute
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
