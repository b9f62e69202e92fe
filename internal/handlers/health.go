package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/project-management-api/internal/errors"
)

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// Health answers 200 when every pinger succeeds, 503 otherwise.
func Health(pingers ...Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		for _, ping := range pingers {
			if err := ping(ctx); err != nil {
				apierrors.ServiceUnavailable(c, "")
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
