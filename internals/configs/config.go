package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MidtransServerKey string
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

	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")
	if MidtransServerKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY belum diset — checkout gateway nonaktif")
	}
}

// GetEnv membaca env var; kosong kalau tidak ada.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOr membaca env var dengan fallback default.
func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
