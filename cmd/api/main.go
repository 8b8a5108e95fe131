package main

import (
	"log"

	"crm/internal/config"
	"crm/internal/database"
	"crm/internal/domain"
	"crm/internal/middleware"
	"crm/internal/modules/admin"
	"crm/internal/modules/auth"
	"crm/internal/modules/client"
	"crm/internal/modules/export"
	"crm/internal/modules/lead"
	"crm/internal/modules/manager"
	"crm/internal/modules/task"
	"crm/internal/pkg/jwt"
	"crm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	clientRepo := repository.NewClientRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, jwtService)
	leadService := lead.NewService(leadRepo)
	taskService := task.NewService(taskRepo, leadRepo)
	clientService := client.NewService(clientRepo)
	managerService := manager.NewService(leadRepo, userRepo, clientRepo)
	adminService := admin.NewService(userRepo, leadRepo, clientRepo)
	exportService := export.NewService()

	authHandler := auth.NewHandler(authService)
	leadHandler := lead.NewHandler(leadService)
	taskHandler := task.NewHandler(taskService)
	clientHandler := client.NewHandler(clientService)
	managerHandler := manager.NewHandler(managerService)
	adminHandler := admin.NewHandler(adminService)
	exportHandler := export.NewHandler(exportService)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	api := router.Group("/api")

	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService), middleware.CurrentUser(userRepo))
	{
		authHandler.RegisterProtectedRoutes(protected)

		sales := protected.Group("")
		sales.Use(middleware.RequireRole(domain.RoleEmployee, domain.RoleManager))
		{
			leadHandler.RegisterRoutes(sales.Group("/leads"))
			taskHandler.RegisterRoutes(sales.Group("/tasks"))
			clientHandler.RegisterRoutes(sales.Group("/clients"))
		}

		mgr := protected.Group("/manager")
		mgr.Use(middleware.RequireRole(domain.RoleManager))
		{
			managerHandler.RegisterRoutes(mgr)
			mgr.POST("/change-password", authHandler.ChangePassword)
		}

		adm := protected.Group("/admin")
		adm.Use(middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adm)
		}

		employees := protected.Group("/employees")
		{
			adminHandler.RegisterEmployeeRoutes(employees)
			employees.POST("/change-password", authHandler.ChangePassword)
		}

		exportHandler.RegisterRoutes(protected.Group("/export"))
	}

	log.Printf("CRM API listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
