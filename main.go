package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"signal-service/config"
	"signal-service/internal/database"
	"signal-service/internal/handlers"
	"signal-service/internal/middleware"
	"signal-service/internal/services"
	"signal-service/internal/signal"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.InitLogger()

	// Загрузка конфигурации
	cfg := config.Load()
	slog.Info("Configuration loaded",
		"port", cfg.Port,
		"db_host", cfg.Database.Host,
		"ml_url", cfg.ML.ServiceURL,
	)

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatalf("Ошибка создания каталога загрузок: %v", err)
	}

	// Подключение к БД
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}

	// Инициализация сервисов
	reader := signal.NewReader()
	scorer := services.NewScorerClient(cfg.ML.ServiceURL, cfg.ML.Timeout)
	predictor := services.NewPredictor(reader, scorer, db)

	// Инициализация обработчиков
	predictHandler := handlers.NewPredictHandler(predictor, cfg.Upload.Dir)

	// Настройка роутера
	router := gin.Default()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.MaxMultipartMemory = config.MaxUploadSize

	// API endpoints
	api := router.Group("/api/v1")
	api.GET("/health", predictHandler.Health)

	predict := api.Group("/predict")
	if cfg.AuthSecret != "" {
		predict.Use(middleware.RequireAuth(cfg.AuthSecret))
	}
	{
		predict.POST("/preterm", predictHandler.PredictPreterm)
		predict.POST("/acidemia", predictHandler.PredictAcidemia)
		predict.POST("/preterm-form", predictHandler.PredictPretermForm)
		predict.POST("/acidemia-form", predictHandler.PredictAcidemiaForm)
	}

	log.Printf("Запуск сервиса анализа сигналов на порту %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
