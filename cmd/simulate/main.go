// Command simulate runs a households demographic simulation for a
// configured number of years, recording per-year, per-community
// statistics to SQLite.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/talgya/households/internal/bootstrap"
	"github.com/talgya/households/internal/config"
	"github.com/talgya/households/internal/persistence"
)

func main() {
	configPath := flag.String("config", "households.toml", "path to TOML run configuration")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		if _, ok := os.LookupEnv("HOUSEHOLDS_ALLOW_DEFAULT_CONFIG"); ok {
			cfg = config.Default()
		} else {
			logger.Error("loading config", "error", err)
			os.Exit(1)
		}
	}

	world, err := bootstrap.BuildWorldFromConfig(cfg, logger)
	if err != nil {
		logger.Error("bootstrapping world", "error", err)
		os.Exit(1)
	}

	db, err := persistence.Open(cfg.Persistence.Path)
	if err != nil {
		logger.Error("opening persistence store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("persistence opened", "path", cfg.Persistence.Path)

	for year := 0; year < cfg.Years; year++ {
		if err := world.Advance(); err != nil {
			logger.Error("advancing year", "year", world.Year, "error", err)
			os.Exit(1)
		}
		for _, comm := range world.Communities {
			row := persistence.YearStats{
				CommunityID:     comm.ID.String(),
				Year:            world.Year,
				Population:      comm.Population,
				Births:          comm.BirthsThisYear,
				Deaths:          comm.DeathsThisYear,
				Marriages:       comm.MarriagesThisYear,
				Moves:           comm.MovesThisYear,
				OccupiedHouses:  comm.OccupiedHouses,
				HousingCapacity: comm.HousingCapacity,
			}
			if err := db.SaveYearStats(row); err != nil {
				logger.Error("saving year stats", "community", comm.Name, "year", world.Year, "error", err)
				os.Exit(1)
			}
		}
		logger.Debug("year complete", "year", world.Year)
	}

	logger.Info("simulation complete", "years", cfg.Years)
}
