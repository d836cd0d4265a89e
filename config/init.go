package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

// InitApp khởi tạo router, websocket hub và cron scheduler
func InitApp() (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if os.Getenv("ENV") == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(cors.New(corsConfig()))
	router.SetTrustedProxies(nil)

	if err := initComponents(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	m := melody.New()

	c := cron.New()

	return router, m, c, nil
}

// corsConfig cho phép origin theo ALLOWED_ORIGINS, để trống thì nhận tất cả
func corsConfig() cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false

	allowed := strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",")
	configCors.AllowOriginFunc = func(origin string) bool {
		if len(allowed) == 1 && allowed[0] == "" {
			return true
		}
		for _, o := range allowed {
			if strings.TrimSpace(o) == origin {
				return true
			}
		}
		return false
	}
	return configCors
}

func initComponents() error {
	LoadEnv()

	ConnectDB()

	LoadImgBB()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("All components initialized successfully")
	return nil
}

// InitWebSocket gắn endpoint websocket cho chat và cập nhật booking trực tiếp
func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	log.Println("WebSocket initialized successfully")
}
