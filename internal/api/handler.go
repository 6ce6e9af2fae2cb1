package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astrointeract/astropulse/internal/domain/dto"
	"github.com/astrointeract/astropulse/internal/logger"
	"github.com/astrointeract/astropulse/internal/service"
)

// Handler provides HTTP handlers for horoscope computation endpoints.
//
// Responsibilities:
//   - Validate incoming request bodies (schema + date/time formats)
//   - Map request DTOs onto the engine's input type
//   - Translate computed horoscopes into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.HoroscopeService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.HoroscopeService): Service dependency that runs the chart engine.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.HoroscopeService) *Handler {
	return &Handler{svc: svc}
}

// CreateHoroscope handles POST /api/v1/horoscope requests.
//
// Responses:
//   - 200 OK: Returns HoroscopeResponse with all six charts and the aspect matrix.
//   - 400 Bad Request: Malformed body or invalid date/time formats.
//   - 500 Internal Server Error: Unexpected failure during chart derivation.
//
// Partial sub-failures (unknown location, unsolvable solar return, polar
// house computation) never surface here; they degrade the affected chart and
// still yield 200.
//
// CreateHoroscope godoc
// @Summary      Compute a horoscope
// @Description  Computes natal, progressed, transit, solar-arc, solar-return and heliocentric charts plus cross-chart aspects
// @Tags         horoscope
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HoroscopeRequest  true  "Birth data and event chart dates"
// @Success      200      {object}  dto.HoroscopeResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/horoscope [post]
func (h *Handler) CreateHoroscope(c *gin.Context) {
	// ─── Bind and validate body ───────────────────────────────
	var req dto.HoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	logger.L().Info().Str("natal_date", req.Natal.Date).Msg("horoscope requested")

	// ─── Run the chart engine (with request context) ──────────
	horoscope, err := h.svc.Compute(c.Request.Context(), req.ToInput())
	if err != nil {
		// Cause stays in the logs; the caller gets a generic message.
		logger.L().Error().Err(err).Msg("horoscope computation failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", nil))
		return
	}

	// ─── Build and return response DTO ────────────────────────
	c.JSON(http.StatusOK, dto.NewHoroscopeResponse(horoscope))
}
