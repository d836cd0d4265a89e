package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// ImgBBConfig cấu hình host ảnh ngoài (API key truyền qua query string)
type ImgBBConfig struct {
	Endpoint string
	APIKey   string
}

var ImgBB ImgBBConfig

// LoadImgBB nạp cấu hình host ảnh từ biến môi trường
func LoadImgBB() {
	ImgBB = ImgBBConfig{
		Endpoint: os.Getenv("IMGBB_ENDPOINT"),
		APIKey:   os.Getenv("IMGBB_API_KEY"),
	}
	if ImgBB.Endpoint == "" {
		ImgBB.Endpoint = "https://api.imgbb.com/1/upload"
	}
	if ImgBB.APIKey == "" {
		log.Println("Warning: IMGBB_API_KEY chưa được thiết lập, upload ảnh sẽ thất bại")
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
