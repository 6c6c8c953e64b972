package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health probes the two stores the ledgers depend on. Postgres down means
// no bookkeeping at all; Redis down only degrades the login limiter, but
// both are reported so operators see the difference.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "ligado"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "indisponível"
		}

		redisStatus := "ligado"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "indisponível"
		}

		status := http.StatusOK
		if postgres != "ligado" || redisStatus != "ligado" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"servico":  "livrocaixa",
			"ok":       status == http.StatusOK,
			"postgres": postgres,
			"redis":    redisStatus,
		})
	}
}
