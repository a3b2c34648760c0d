package status

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Descriptor is the readiness/tier document served to the demo pages.
type Descriptor struct {
	ApiURL       string
	RelayURL     string
	DashboardURL string
	DemoUser     string
	DemoPassword string
}

type Handler struct {
	descriptor Descriptor
}

func NewHandler(descriptor Descriptor) *Handler {
	return &Handler{descriptor: descriptor}
}

// GetConfig godoc
// @Summary  Readiness and client-facing configuration descriptor
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ready":        true,
		"tier":         "demo",
		"apiUrl":       h.descriptor.ApiURL,
		"relayUrl":     h.descriptor.RelayURL,
		"dashboardUrl": h.descriptor.DashboardURL,
		"demoCredentials": gin.H{
			"user":     h.descriptor.DemoUser,
			"password": h.descriptor.DemoPassword,
		},
	})
}
