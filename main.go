package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"devassist-backend/config"
	apiv1 "devassist-backend/controllers/v1"
	"devassist-backend/fiberlog"
	"devassist-backend/initializers"
	filestorage "devassist-backend/lib/file-storage"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMB * 1024 * 1024,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, DELETE",
	}))

	if *config.Conf.App.SwaggerEnabled {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	}

	// изображения-заглушки при локальном хранилище
	app.Static("/files/"+filestorage.ImagesPrefix, filepath.Join(config.Conf.Storage.LocalDir, filestorage.ImagesPrefix))

	//api
	api := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimitMB * 1024 * 1024,
	})
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api", api)
	apiv1.InitApiRouters(api, config.Conf.Auth.JWTSecret)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
