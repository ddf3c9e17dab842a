package main

import (
	"context"
	"log"

	"moodmovie-be/internal/config"
	"moodmovie-be/internal/entity"
	"moodmovie-be/internal/repository/unitofwork"
	"moodmovie-be/pkg/database"
	"moodmovie-be/pkg/recommend"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	repo := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx).MovieRepository()

	existing, err := repo.FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to read catalog:", err)
	}
	known := recommend.NewExclusionSet()
	for _, m := range existing {
		known.Add(m.Title)
	}

	color.Cyan("Seeding starter catalog (%d movies already present)\n", len(existing))

	var fresh []*entity.Movie
	for _, m := range starterCatalog() {
		if known.Has(m.Title) {
			color.Yellow("  skip   %s (%d)", m.Title, m.Year)
			continue
		}
		fresh = append(fresh, m)
		color.Green("  add    %s (%d) [%s/%s]", m.Title, m.Year, m.PrimaryMood, m.EnergyLevel)
	}

	if len(fresh) == 0 {
		color.Cyan("Catalog already seeded, nothing to do")
		return
	}
	if err := repo.CreateBatch(ctx, fresh); err != nil {
		color.Red("Failed to seed catalog: %v", err)
		log.Fatal(err)
	}
	color.Cyan("Seeded %d movies", len(fresh))
}
