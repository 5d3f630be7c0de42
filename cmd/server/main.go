package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/config"
	"github.com/AndrewSs45/Projecto-Algebra/internal/controller"
	"github.com/AndrewSs45/Projecto-Algebra/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		AppName: "chess-movement-demo",
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OriginList(),
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
	if cfg.RequestLog {
		app.Use(logger.New())
	}

	// Initialize services
	sessionManager := service.NewSessionManager(cfg.BoardWidth, cfg.BoardHeight, cfg.SessionTTL)
	boardService := service.NewBoardService(sessionManager)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go sessionManager.RunReaper(ctx, time.Minute)

	controller.RegisterRoutes(app, boardService, websocket.Config{
		ReadBufferSize:  cfg.ReadBufferSize,
		WriteBufferSize: cfg.WriteBufferSize,
		Origins:         cfg.AllowOrigins,
	})

	go func() {
		<-ctx.Done()
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s (%dx%d boards)", cfg.Addr, cfg.BoardWidth, cfg.BoardHeight)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
