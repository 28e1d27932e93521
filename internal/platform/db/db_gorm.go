// Package db bootstraps the GORM MySQL connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	accountentity "stocktrack/internal/feature/account/domain/entity"
	commententity "stocktrack/internal/feature/comment/domain/entity"
	portfolioentity "stocktrack/internal/feature/portfolio/domain/entity"
	stockentity "stocktrack/internal/feature/stock/domain/entity"
)

// OpenDB connects to MySQL using the DB_* environment variables, retrying
// for up to a minute so the server can come up alongside the database.
// When RUN_MIGRATIONS=true, the schema is auto-migrated.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&accountentity.User{},
			&stockentity.Stock{},
			&commententity.Comment{},
			&portfolioentity.Holding{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
