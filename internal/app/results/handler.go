package results

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

type Handler struct {
	store Store
	log   *logger.Logger
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store, log: logger.Default()}
}

// GetResult godoc
// @Summary  Fetch the last callback payload for a relay request
// @Param    request_id  path  string  true  "relay request id"
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /results/{request_id} [get]
func (h *Handler) GetResult(c *gin.Context) {
	requestID := c.Param("request_id")

	payload, found, err := h.store.Get(c.Request.Context(), requestID)
	if err != nil {
		// A backend hiccup reads the same as "not there yet": the browser
		// retries or falls back to the SDK's own channel.
		h.log.Errorf(err, "Result lookup failed for request: %s", requestID)
		c.JSON(http.StatusOK, gin.H{"found": false, "data": nil})
		return
	}

	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false, "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "data": payload})
}
