package main

import (
	_ "embed"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

//go:embed static/index.html
var indexHTML []byte

// ========== 主程式 ==========
func main() {
	// 載入 .env（沒有也沒關係，直接用環境變數）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	gen, err := buildGenerator()
	if err != nil {
		log.Fatalf("generator init error: %v", err)
	}
	a := newApp(gen)

	// 設定 Gin
	r := gin.Default()

	// CORS 設定 - 允許前端跨域請求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 規劃頁面
	r.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", indexHTML)
	})

	// API 路由
	registerRoutes(r, a)

	// 啟動伺服器
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	log.Printf("API: http://localhost:%s/api", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func registerRoutes(r *gin.Engine, a *app) {
	api := r.Group("/api")
	{
		api.POST("/plan", a.submitPlan)
		api.GET("/plan", a.getPlan)
		api.POST("/plan/reorder", a.reorderPlan)
		api.POST("/plan/reset", a.resetPlan)

		// 健康檢查
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})
	}
}
