package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ldnsports/ldnsports_api/config"
	"github.com/ldnsports/ldnsports_api/internal/db"
	"github.com/ldnsports/ldnsports_api/internal/http/bingsearch"
	"github.com/ldnsports/ldnsports_api/internal/http/bravesearch"
	"github.com/ldnsports/ldnsports_api/internal/http/facebook"
	"github.com/ldnsports/ldnsports_api/internal/http/googlesearch"
	"github.com/ldnsports/ldnsports_api/internal/http/meetup"
)

type Dependencies struct {
	DB *db.DB

	Meetup   *meetup.Client
	Facebook *facebook.Client
	Google   *googlesearch.Client
	Bing     *bingsearch.Client
	Brave    *bravesearch.Client
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	deps := Dependencies{
		DB:       database,
		Meetup:   meetup.NewClient(cfg.MeetupAccessToken),
		Facebook: facebook.NewClient(cfg.FacebookAccessToken),
		Google:   googlesearch.NewClient(cfg.GoogleAPIKey, cfg.GoogleSearchEngineID),
		Bing:     bingsearch.NewClient(cfg.BingAPIKey),
		Brave:    bravesearch.NewClient(cfg.BraveAPIKey),
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
