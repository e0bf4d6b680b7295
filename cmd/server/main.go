package main

import (
	"log"
	"os"
	"time"

	httpctrl "marketplace-service/internal/controllers/http"
	"marketplace-service/internal/infra"
	mmysql "marketplace-service/internal/infra/mysql"
	"marketplace-service/internal/infra/rabbitmq"
	"marketplace-service/internal/qr"
	mysqlrepo "marketplace-service/internal/repository/mysql"
	"marketplace-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	branchRepo := mysqlrepo.NewBranchRepository(db)
	statsRepo := mysqlrepo.NewSellerStatsRepository(db)
	adminRepo := mysqlrepo.NewAdminRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "marketplace.events")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	notifier := infra.NewEventNotifier(publisher)

	stockSvc := services.NewStockService(productRepo, notifier)
	orderSvc := services.NewOrderService(orderRepo, branchRepo, statsRepo, adminRepo, stockSvc, qr.NewCodec(), notifier)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	handler := httpctrl.NewHandler(orderSvc, stockSvc, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting marketplace service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
