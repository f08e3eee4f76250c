package handler

import (
	"context"
	"time"

	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports process and database health.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if utils.MongoClient == nil {
		dbStatus = "down"
	} else if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "down"
	}

	utils.Success(c, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"cpu_usage": utils.GetCPUUsage(),
		"time":      time.Now().UTC(),
	})
}
