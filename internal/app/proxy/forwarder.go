package proxy

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

// Forwarder relays a request onto a configured upstream, remapping the
// inbound wildcard path under upstreamPrefix. Status and body come back
// untouched; only hop-specific headers are dropped.
type Forwarder struct {
	name           string
	upstream       string
	upstreamPrefix string
	client         *http.Client
	log            *logger.Logger
}

func NewForwarder(name, upstream, upstreamPrefix string) *Forwarder {
	return &Forwarder{
		name:           name,
		upstream:       strings.TrimRight(upstream, "/"),
		upstreamPrefix: upstreamPrefix,
		client:         &http.Client{Timeout: 30 * time.Second},
		log:            logger.Default(),
	}
}

// Handle godoc
// @Summary  Pass-through forwarder to the configured upstream
// @Router   /proxy/{path} [get]
func (f *Forwarder) Handle(c *gin.Context) {
	target := f.upstream + f.upstreamPrefix + c.Param("path")
	if raw := c.Request.URL.RawQuery; raw != "" {
		target += "?" + raw
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target, c.Request.Body)
	if err != nil {
		f.log.Errorf(err, "[%s] Could not build upstream request for %s", f.name, target)
		c.JSON(http.StatusBadGateway, gin.H{"error": "bad gateway", "message": err.Error()})
		return
	}
	copyHeaders(req.Header, c.Request.Header)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warnf("[%s] Upstream unreachable: %v", f.name, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "bad gateway", "message": err.Error()})
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		if skipHeader(key) {
			continue
		}
		for _, v := range values {
			c.Writer.Header().Add(key, v)
		}
	}

	c.Status(resp.StatusCode)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		f.log.Debugf("[%s] Client went away mid-response: %v", f.name, err)
	}
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if skipHeader(key) {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

func skipHeader(key string) bool {
	// Connection is hop-specific; the CORS headers are owned by this
	// server's own middleware, an upstream's copy would duplicate them.
	return strings.EqualFold(key, "Connection") ||
		strings.HasPrefix(http.CanonicalHeaderKey(key), "Access-Control-")
}
