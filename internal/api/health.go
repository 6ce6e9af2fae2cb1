package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on ephemeris sidecar connectivity).
type HealthHandler struct {
	ephemerisPing func() error // Function to check ephemeris sidecar connectivity
}

// NewHealthHandler constructs a HealthHandler with the provided ping function.
//
// Parameters:
//   - ephemerisPing (func() error): A function used to check if the ephemeris
//     sidecar is reachable. Typically, this is ephemeris.Client.Ping.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(ephemerisPing func() error) *HealthHandler {
	return &HealthHandler{ephemerisPing: ephemerisPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if the ephemeris sidecar responds, 503 otherwise.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe (checks the ephemeris dependency)
	// @Summary      Readiness probe
	// @Description  Returns ready if the ephemeris sidecar is reachable
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Failure      503  {object}  map[string]string
	// @Router       /readyz [get]
	r.GET("/readyz", func(c *gin.Context) {
		if h.ephemerisPing != nil && h.ephemerisPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
