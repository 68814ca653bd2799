package main

import (
	"log"
	"os"
	"time"

	"menustudio/internal/cart"
	"menustudio/internal/customize"
	"menustudio/internal/menu"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STATE ─────────────────────────
	// One in-memory session per process: the store is seeded from the
	// hard-coded default and torn down with the process.
	store := menu.NewStore(nil)
	sessionCart := cart.New()

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(store)
	quoteHandler := customize.NewHandler(store)
	cartHandler := cart.NewHandler(store, sessionCart)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	menus := r.Group("/menu")
	{
		menus.GET("", menuHandler.GetMenu)
		menus.GET("/preview", menuHandler.Preview)
		menus.GET("/palette", menuHandler.GetPalette)

		menus.POST("/categories", menuHandler.AddCategory)
		menus.DELETE("/categories/:id", menuHandler.RemoveCategory)
		menus.PATCH("/categories/:id/style", menuHandler.SetCategoryStyle)
		menus.PATCH("/categories/:id/columns", menuHandler.SetCategoryColumns)

		menus.POST("/categories/:id/items", menuHandler.AddItem)
		menus.PUT("/categories/:id/items/:itemId", menuHandler.UpdateItem)
		menus.POST("/categories/:id/items/:itemId/badges", menuHandler.ToggleBadge)

		menus.PATCH("/defaults", menuHandler.SetDefaults)
		menus.PATCH("/shadow", menuHandler.SetShadow)
		menus.PATCH("/navigation", menuHandler.SetNavigation)
		menus.PATCH("/colors", menuHandler.SetThemeColor)
		menus.PATCH("/display", menuHandler.SetDisplaySetting)
		menus.PATCH("/navigation/settings", menuHandler.SetNavigationSetting)
		menus.PATCH("/theme", menuHandler.SetThemeSetting)
	}

	// ───────────────────────── CUSTOMIZATION + CART ─────────────────────────
	r.POST("/items/quote", quoteHandler.Quote)
	r.GET("/cart", cartHandler.List)
	r.POST("/cart", cartHandler.Add)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 Menu studio running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
