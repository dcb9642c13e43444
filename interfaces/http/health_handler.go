package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"my-tube/domain/dto"
)

type IHealthHandler interface {
	Healthz(c *gin.Context)
}

type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) IHealthHandler {
	return &HealthHandler{client: client}
}

// Healthz reports liveness plus store reachability. The store check has its
// own short deadline so a stuck store cannot hang the probe.
func (h *HealthHandler) Healthz(c *gin.Context) {
	storeUp := false
	if h.client != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		storeUp = h.client.Ping(ctx, readpref.Primary()) == nil
	}
	if !storeUp {
		c.JSON(http.StatusServiceUnavailable, dto.NewError(http.StatusServiceUnavailable, "store unreachable"))
		return
	}
	writeSuccess(c, http.StatusOK, gin.H{"store": "up"}, "service healthy")
}
