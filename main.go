package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"elevated/config"
	"elevated/database"
	"elevated/gamification"
	authRoutes "elevated/routers/authRoutes"
	badgeRoutes "elevated/routers/badgeRoutes"
	certificationRoutes "elevated/routers/certificationRoutes"
	chatRoutes "elevated/routers/chatRoutes"
	compilerRoutes "elevated/routers/compilerRoutes"
	courseRoutes "elevated/routers/courseRoutes"
	quizRoutes "elevated/routers/quizRoutes"
	sessionRoutes "elevated/routers/sessionRoutes"
	userRoutes "elevated/routers/userRoutes"
	"elevated/store/gormstore"
	"elevated/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.SeedData()

	// The engine reads the badge catalog at construction, so seeding
	// must happen first.
	engine, err := gamification.NewEngine(gormstore.New(database.Database.Db))
	if err != nil {
		log.Fatalf("Failed to initialize gamification engine: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, engine)
	courseRoutes.SetupCourseRoutes(app, engine)
	userRoutes.SetupUserRoutes(app, engine)
	quizRoutes.SetupQuizRoutes(app, engine)
	compilerRoutes.SetupCompilerRoutes(app, engine)
	badgeRoutes.SetupBadgeRoutes(app, engine)
	certificationRoutes.SetupCertificationRoutes(app, engine)
	sessionRoutes.SetupSessionRoutes(app, engine)
	chatRoutes.SetupChatRoutes(app, engine)

	utils.InitializeSessionScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
