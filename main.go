package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"pelatihanku_backend/internals/configs"
	database "pelatihanku_backend/internals/databases"
	helperOSS "pelatihanku_backend/internals/helpers/oss"
	middlewares "pelatihanku_backend/internals/middlewares"
	routes "pelatihanku_backend/internals/route"
	seeds "pelatihanku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		BodyLimit:             10 * 1024 * 1024, // tanda tangan base64 bisa besar
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan statement_timeout di DB; upload
		// tanda tangan dapat slot lebih longgar dari query biasa)
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🌱 Seed data referensi (skenario penilaian)
	if configs.GetEnv("RUN_SEEDS", "false") == "true" {
		seeds.RunAllSeeds(database.DB)
	}

	// ✅ Blob store untuk tanda tangan sesi
	ossService, err := helperOSS.NewOSSServiceFromEnv()
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi OSS: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, ossService)

	// 🚦 Start + graceful shutdown
	port := configs.GetEnv("PORT", "8080")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("❌ Server berhenti: %v", err)
		}
	}()
	log.Printf("🚀 pelatihanku_backend listening di :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("⏳ Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown err: %v", err)
	}
	log.Println("👋 Bye.")
}
