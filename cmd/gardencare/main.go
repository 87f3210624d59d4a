package main

import (
	"context"
	"database/sql"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/cristiangastonl/MyGardenApp-sub001/internal/models"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/notify"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/store"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/tips"
	"github.com/cristiangastonl/MyGardenApp-sub001/internal/weather"
)

type CLI struct {
	DB          string  `help:"Path to SQLite database" default:"data/gardencare.db" env:"GARDEN_DB"`
	Latitude    float64 `help:"Latitude used for season resolution" default:"-34.6" env:"GARDEN_LATITUDE"`
	Timezone    string  `help:"IANA timezone for scheduling" default:"America/Argentina/Buenos_Aires" env:"GARDEN_TZ"`
	MetricsAddr string  `help:"Prometheus metrics listen address" default:":9090" env:"GARDEN_METRICS_ADDR"`
	SeedDemo    bool    `help:"Seed a demo garden when the database is empty" default:"true" negatable:""`
	Once        bool    `help:"Run a single planning pass and exit"`
}

var demoPlants = []models.Plant{
	{Name: "Kitchen Basil", Icon: "🌱", TypeID: "herb", WateringIntervalDays: 2, SunHoursRequired: 6, SunDays: []time.Weekday{time.Monday, time.Thursday}},
	{Name: "Monstera", Icon: "🌿", TypeID: "tropical", WateringIntervalDays: 7, SunHoursRequired: 4, SunDays: []time.Weekday{time.Saturday}},
	{Name: "Aloe Vera", Icon: "🌵", TypeID: "succulent", WateringIntervalDays: 14, SunHoursRequired: 6, OutdoorDays: []time.Weekday{time.Sunday}},
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("gardencare"),
		kong.Description("Plant-care companion: care tips, health scores and reminders."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		log.Printf("could not load timezone %s, using UTC: %v", cli.Timezone, err)
		loc = time.UTC
	}

	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if cli.SeedDemo {
		if err := seedIfEmpty(st, loc); err != nil {
			log.Fatalf("seed demo garden: %v", err)
		}
	}

	now := time.Now().In(loc)
	lat := cli.Latitude
	tracker := tips.LoadTracker(st, models.DateOf(now))
	selector := tips.NewSelector(tips.Catalog(), rand.NewSource(now.UnixNano()))
	dispatcher := notify.NewDispatcher(notify.NewLogGateway())
	provider := weather.NewStaticProvider(loc)
	runner := notify.NewRunner(st, provider, dispatcher, tracker, selector, &lat, loc)

	if cli.Once {
		runner.PlanOnce(now)
		return
	}

	go func() {
		http.Handle("/metrics", promhttp.Handler())
		log.Printf("metrics on %s/metrics", cli.MetricsAddr)
		if err := http.ListenAndServe(cli.MetricsAddr, nil); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Println("gardencare running")
	runner.Run(ctx)
}

func seedIfEmpty(st *store.Store, loc *time.Location) error {
	plants, err := st.ListPlants()
	if err != nil {
		return err
	}
	if len(plants) > 0 {
		return nil
	}

	today := models.DateOf(time.Now().In(loc))
	for _, p := range demoPlants {
		p.CreatedAt = &today
		if _, err := st.InsertPlant(p); err != nil {
			return err
		}
	}
	log.Printf("seeded %d demo plants", len(demoPlants))
	return nil
}
