package config

import (
	"log"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	Dsn        string `env:"DSN"`
	JwtSecret  string `env:"JWT_SECRET"`
	JwtExpires string `env:"JWT_EXPIRES" envDefault:"12h"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `env:"GOOGLE_REDIRECT_URL"`

	// Scraper provider credentials. An empty credential makes the
	// corresponding scraper short-circuit with setup instructions.
	MeetupAccessToken    string `env:"MEETUP_ACCESS_TOKEN"`
	FacebookAccessToken  string `env:"FACEBOOK_ACCESS_TOKEN"`
	GoogleAPIKey         string `env:"GOOGLE_API_KEY"`
	GoogleSearchEngineID string `env:"GOOGLE_SEARCH_ENGINE_ID"`
	BingAPIKey           string `env:"BING_API_KEY"`
	BraveAPIKey          string `env:"BRAVE_API_KEY"`

	ScraperVersion string `env:"SCRAPER_VERSION" envDefault:"1.0"`

	// Comma-separated emails upserted as SUPER_ADMIN rows on boot.
	AdminEmails string `env:"ADMIN_EMAILS"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
