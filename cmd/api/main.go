package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JuanCami009/banco-sangre-api/internal/application/auth"
	"github.com/JuanCami009/banco-sangre-api/internal/application/usecase"
	"github.com/JuanCami009/banco-sangre-api/internal/infrastructure/postgres"
	httpRouter "github.com/JuanCami009/banco-sangre-api/internal/interfaces/http"
	"github.com/JuanCami009/banco-sangre-api/pkg/config"
	"github.com/JuanCami009/banco-sangre-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)
	bloodRepo := postgres.NewBloodRepository(pool)
	donorRepo := postgres.NewDonorRepository(pool)
	entityRepo := postgres.NewHealthEntityRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	bagRepo := postgres.NewBloodBagRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bloodUC := usecase.NewBloodUseCase(bloodRepo)
	donorUC := usecase.NewDonorUseCase(donorRepo, bloodUC, userRepo)
	entityUC := usecase.NewHealthEntityUseCase(entityRepo, userRepo, txRunner)
	requestUC := usecase.NewRequestUseCase(requestRepo, entityRepo, bloodUC, txRunner)
	bagUC := usecase.NewBloodBagUseCase(bagRepo, requestRepo, donorUC, txRunner)
	roleUC := usecase.NewRoleUseCase(roleRepo, permRepo)
	userUC := usecase.NewUserUseCase(userRepo, roleRepo)
	authUC := auth.NewAuthUseCase(userRepo, roleRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Banco de Sangre API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BloodUC:        bloodUC,
		DonorUC:        donorUC,
		HealthEntityUC: entityUC,
		RequestUC:      requestUC,
		BloodBagUC:     bagUC,
		RoleUC:         roleUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
