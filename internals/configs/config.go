package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret    string
	OSSEndpoint  string
	OSSBucket    string
	OSSAccessKey string
	OSSSecretKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	OSSEndpoint = GetEnv("ALI_OSS_ENDPOINT")
	OSSBucket = GetEnv("ALI_OSS_BUCKET")
	OSSAccessKey = GetEnv("ALI_OSS_ACCESS_KEY")
	OSSSecretKey = GetEnv("ALI_OSS_SECRET_KEY")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset! Route tulis akan menolak semua token.")
	}
	if OSSBucket == "" {
		log.Println("❌ ALI_OSS_BUCKET belum diset! Upload tanda tangan akan gagal.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
