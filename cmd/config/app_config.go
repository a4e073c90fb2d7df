package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"Recetas-Backend/entities"
	"Recetas-Backend/internal/api/handlers"
	"Recetas-Backend/internal/api/presenters"
	"Recetas-Backend/internal/api/routes"
	"Recetas-Backend/internal/middleware"
	"Recetas-Backend/internal/utils"
	"Recetas-Backend/pkg/recipe"
	"Recetas-Backend/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		ErrorHandler: presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	out, err := logOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(middlewares.RecoverMiddleware())
	app.Use(middlewares.RequestIDMiddleware())
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} | ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     out,
	}))
	app.Use(middlewares.MetricsMiddleware())

	// Gateway
	gateway := store.NewGateway(db, entities.Schema)

	// Repository
	recipeRepository := recipe.NewRecipeRepository(gateway)

	// Service
	recipeService := recipe.NewRecipeService(gateway, recipeRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	resourceHandlers := handlers.NewResourceHandlers(gateway, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		RecipeHandler:    recipeHandler,
		ResourceHandlers: resourceHandlers,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

func logOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	return file, nil
}
