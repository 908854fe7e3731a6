package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Shankerteja/Sheshield-backend/models"
)

// Config holds all configurable values for the app. It is constructed
// once in main and injected; business logic never reads the
// environment directly.
type Config struct {
	Env                string `env:"ENV" envDefault:"development"`
	Port               string `env:"PORT" envDefault:"8080"`
	JWTSecret          string `env:"JWT_SECRET,required"`
	DefaultCountryCode string `env:"DEFAULT_COUNTRY_CODE" envDefault:"91"`

	DB     DBConfig
	Twilio TwilioConfig
}

type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"sheshield"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
}

// TwilioConfig carries the SMS transport credentials. If any value is
// missing the notifier runs in mock mode for the process lifetime.
type TwilioConfig struct {
	AccountSID string `env:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	FromNumber string `env:"TWILIO_PHONE_NUMBER"`
}

func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

// OpenDB connects to postgres and migrates the schema.
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Alert{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}
