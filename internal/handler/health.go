package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type healthStatus struct {
	OK    bool   `json:"ok"`
	DB    string `json:"db"`
	Redis string `json:"redis"`
}

// Health pings Postgres and Redis with a short deadline and reports per
// backend. 503 when either is down; nothing internal leaks in the body.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		st := healthStatus{DB: "connected", Redis: "connected"}

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			st.DB = "error"
		}
		if rdb.Ping(ctx).Err() != nil {
			st.Redis = "error"
		}

		code := http.StatusOK
		if st.DB != "connected" || st.Redis != "connected" {
			code = http.StatusServiceUnavailable
		}
		st.OK = code == http.StatusOK

		c.JSON(code, st)
	}
}
