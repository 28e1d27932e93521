package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stocktrack/internal/app/router"
	accountadapters "stocktrack/internal/feature/account/adapters"
	accounthandler "stocktrack/internal/feature/account/transport/handler"
	accountusecase "stocktrack/internal/feature/account/usecase"
	commentadapters "stocktrack/internal/feature/comment/adapters"
	commenthandler "stocktrack/internal/feature/comment/transport/handler"
	commentusecase "stocktrack/internal/feature/comment/usecase"
	portfolioadapters "stocktrack/internal/feature/portfolio/adapters"
	portfoliohandler "stocktrack/internal/feature/portfolio/transport/handler"
	portfoliousecase "stocktrack/internal/feature/portfolio/usecase"
	stockadapters "stocktrack/internal/feature/stock/adapters"
	stockhandler "stocktrack/internal/feature/stock/transport/handler"
	stockusecase "stocktrack/internal/feature/stock/usecase"
	"stocktrack/internal/platform/cache"
	infradb "stocktrack/internal/platform/db"
	jwtmw "stocktrack/internal/platform/jwt"
	infraredis "stocktrack/internal/platform/redis"
)

func main() {
	// Load .env when present; system environment wins otherwise
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// DB
	db := infradb.OpenDB()

	// Redis (optional: the stock cache is bypassed without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := accountadapters.NewUserMySQL(db)
	stockRepo := stockadapters.NewStockMySQL(db)
	commentRepo := commentadapters.NewCommentMySQL(db)
	portfolioRepo := portfolioadapters.NewPortfolioMySQL(db)

	// Redis read-through cache over the stock read paths
	cachedStockRepo := cache.NewCachingStockRepository(rdb, 5*time.Minute, stockRepo, "stocks")

	// Token issuer
	tokens := jwtmw.NewGeneratorFromEnv()

	// Usecases
	accountUC := accountusecase.NewAccountUsecase(userRepo, tokens)
	stockUC := stockusecase.NewStockUsecase(cachedStockRepo)
	commentUC := commentusecase.NewCommentUsecase(commentRepo, cachedStockRepo)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(portfolioRepo, cachedStockRepo)

	// Handlers
	accountH := accounthandler.NewAccountHandler(accountUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	commentH := commenthandler.NewCommentHandler(commentUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC)

	// Router (CORS is registered inside, ahead of the routes)
	r := router.NewRouter(accountH, stockH, commentH, portfolioH)

	// Fail loudly in development when the signing secret is missing
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
