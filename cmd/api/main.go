package main

import (
	"log"
	"os"
	"time"

	"simulador-preco/internal/auth"
	"simulador-preco/internal/catalog"
	"simulador-preco/internal/db"
	"simulador-preco/internal/middleware"
	"simulador-preco/internal/pricing"
	"simulador-preco/internal/profile"
	"simulador-preco/internal/recipe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	itemRepo := catalog.NewPostgresRepository(pgDB)
	profileRepo := profile.NewPostgresRepository(pgDB)
	recipeRepo := recipe.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(itemRepo)
	profileService := profile.NewService(profileRepo)
	recipeService := recipe.NewService(recipeRepo, itemRepo)
	pricingService := pricing.NewService(itemRepo, profileRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	catalogHandler := catalog.NewHandler(catalogService)
	profileHandler := profile.NewHandler(profileService)
	recipeHandler := recipe.NewHandler(recipeService)
	pricingHandler := pricing.NewHandler(pricingService)

	// ───────────────────────── ITEM ROUTES ─────────────────────────
	items := r.Group("/items")
	items.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OPERATOR", "ADMIN"),
	)
	{
		items.GET("", catalogHandler.ListItems)
		items.GET("/:id", catalogHandler.GetItem)
		items.POST("", catalogHandler.CreateItem)
		items.PUT("/:id", catalogHandler.UpdateItem)
		items.DELETE("/:id", catalogHandler.DeleteItem)
	}

	// ───────────────────────── PROFILE ROUTES ─────────────────────────
	profiles := r.Group("/profiles")
	profiles.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OPERATOR", "ADMIN"),
	)
	{
		profiles.GET("", profileHandler.ListProfiles)
		profiles.GET("/:id", profileHandler.GetProfile)
		profiles.POST("", profileHandler.CreateProfile)
		profiles.PUT("/:id", profileHandler.UpdateProfile)
		profiles.DELETE("/:id", profileHandler.DeleteProfile)
	}

	// ───────────────────────── RECIPE ROUTES ─────────────────────────
	recipes := r.Group("/recipes")
	recipes.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OPERATOR", "ADMIN"),
	)
	{
		recipes.POST("", recipeHandler.SaveRecipe)
		recipes.GET("/:productId", recipeHandler.GetRecipe)
	}

	// ───────────────────────── PRICING ROUTES ─────────────────────────
	pricingGroup := r.Group("/pricing")
	pricingGroup.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("OPERATOR", "ADMIN"),
	)
	{
		pricingGroup.POST("/simulate", pricingHandler.Simulate)
	}

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
