package callback

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

const signatureHeader = "X-ZKP-Signature"

type Handler struct {
	svc *Service
	log *logger.Logger
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, log: logger.Default()}
}

// Post godoc
// @Summary  Relay proof-completion callback
// @Accept   json
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /callback [post]
func (h *Handler) Post(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.log.Warnf("Could not read callback body: %v", err)
		body = nil
	}

	if sig := c.GetHeader(signatureHeader); !h.svc.VerifySignature(body, sig) {
		// Accepted anyway; trust decisions live at the network boundary.
		h.log.Warnf("Callback signature mismatch from %s", c.ClientIP())
	}

	out := h.svc.Ingest(c.Request.Context(), body)
	h.log.Infof("Callback ingested: request_id=%q stored=%t delivered=%d",
		out.RequestID, out.Stored, out.Delivered)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Get godoc
// @Summary  Body-less callback variant, query parameters as payload
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /callback [get]
func (h *Handler) Get(c *gin.Context) {
	received := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			received[key] = values[0]
		}
	}

	out := h.svc.IngestQuery(c.Request.Context(), received)
	h.log.Infof("Query callback ingested: request_id=%q stored=%t delivered=%d",
		out.RequestID, out.Stored, out.Delivered)

	c.JSON(http.StatusOK, gin.H{"success": true, "received": received})
}
