package link

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const deepLinkScheme = "proofport"

// BuildDeepLink wraps a request descriptor URI into the URI the mobile
// prover app registers for.
func BuildDeepLink(requestURI string) string {
	return fmt.Sprintf("%s://verify?request_uri=%s", deepLinkScheme, url.QueryEscape(requestURI))
}

func qrBase64(data string) string {
	png, _ := qrcode.Encode(data, qrcode.Medium, 256)
	return base64.StdEncoding.EncodeToString(png)
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// QR godoc
// @Summary  Render arbitrary text as a QR PNG
// @Param    data  query  string  true   "content to encode"
// @Param    size  query  int     false  "image size in pixels"
// @Produce  png
// @Success  200
// @Router   /link/qr [get]
func (h *Handler) QR(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is required"})
		return
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "256"))
	if err != nil || size < 64 || size > 1024 {
		size = 256
	}

	png, err := qrcode.Encode(data, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// DeepLink godoc
// @Summary  Build the prover-app deep link for a request descriptor URI
// @Param    request_uri  query  string  true  "request descriptor URI"
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /link/deeplink [get]
func (h *Handler) DeepLink(c *gin.Context) {
	requestURI := c.Query("request_uri")
	if requestURI == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request_uri is required"})
		return
	}

	deeplink := BuildDeepLink(requestURI)
	c.JSON(http.StatusOK, gin.H{
		"deeplink":   deeplink,
		"qr_png_b64": qrBase64(deeplink),
	})
}
