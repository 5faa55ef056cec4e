package main

import (
	"context"
	"log"

	"Trattoria-Backend/cmd/config"
	migration "Trattoria-Backend/cmd/database/migrate"
	"Trattoria-Backend/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	var (
		db   *gorm.DB
		pool *pgxpool.Pool
		err  error
	)
	if utils.GetConfig("STORAGE_BACKEND") == "supabase" {
		pool, err = config.ConnectSupabase(context.Background())
		if err != nil {
			log.Fatalf("supabase connection failed: %v", err)
		}
		defer pool.Close()
	} else {
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	app, err := config.NewApp(db, pool)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
