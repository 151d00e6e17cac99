package v1

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sinkhole_navigator/internal/config"
	"github.com/shenikar/sinkhole_navigator/internal/geo"
	"github.com/shenikar/sinkhole_navigator/internal/models"
	"github.com/shenikar/sinkhole_navigator/internal/planner"
	"github.com/shenikar/sinkhole_navigator/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	hazardService     service.HazardService
	navigationService service.NavigationService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(
	hazardService service.HazardService,
	navigationService service.NavigationService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		hazardService:     hazardService,
		navigationService: navigationService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Plan a safe walking route
// @Description Plan a route between two points, detouring around known sinkhole risk areas. Requires API key.
// @Tags Navigation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param route body SafeRouteRequest true "Route request"
// @Success 200 {object} SafeRouteResponse
// @Failure 400 {object} map[string]string "Invalid request body, coordinates or outside service area"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /navigation/safe-route [post]
func (h *Handler) planSafeRoute(c *gin.Context) {
	log := h.logger.WithField("method", "planSafeRoute")

	plan, ok := h.plan(c, log)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ModelToSafeRouteResponse(plan))
}

// @Summary Plan a safe walking route as GeoJSON
// @Description Same as /navigation/safe-route, rendered as a GeoJSON FeatureCollection with the route line, waypoints and avoided risk areas. Requires API key.
// @Tags Navigation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param route body SafeRouteRequest true "Route request"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Invalid request body, coordinates or outside service area"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /navigation/safe-route/geojson [post]
func (h *Handler) planSafeRouteGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "planSafeRouteGeoJSON")

	plan, ok := h.plan(c, log)
	if !ok {
		return
	}

	data, err := json.Marshal(geo.RouteFeatureCollection(*plan))
	if err != nil {
		log.WithError(err).Error("Failed to encode route as GeoJSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}

func (h *Handler) plan(c *gin.Context, log *logrus.Entry) (*models.RoutePlan, bool) {
	var input SafeRouteRequest
	if !h.bind(c, log, &input) {
		return nil, false
	}

	plan, err := h.navigationService.PlanSafeRoute(c.Request.Context(), callerID(c), DTOToRouteRequest(input))
	if err != nil {
		h.respondError(c, log, err, "Failed to plan route in service")
		return nil, false
	}
	return plan, true
}

// @Summary Assess sinkhole risk at a location
// @Description Get the sinkhole risk level at a point and the nearby risk areas. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationRiskRequest true "Location"
// @Success 200 {object} LocationRiskResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/risk [post]
func (h *Handler) assessLocation(c *gin.Context) {
	var input LocationRiskRequest
	log := h.logger.WithField("method", "assessLocation")

	if !h.bind(c, log, &input) {
		return
	}

	point := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	risk, err := h.navigationService.AssessLocation(c.Request.Context(), callerID(c), point)
	if err != nil {
		h.respondError(c, log, err, "Failed to assess location in service")
		return
	}
	c.JSON(http.StatusOK, ModelToLocationRiskResponse(risk))
}

// @Summary Classify a risk probability
// @Description Map a probability in [0,1] to a risk level, display color and label. Requires API key.
// @Tags Risk
// @Produce json
// @Security ApiKeyAuth
// @Param probability query number true "Probability"
// @Success 200 {object} RiskClassResponse
// @Failure 400 {object} map[string]string "Invalid probability"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /risk/classify [get]
func (h *Handler) classifyRisk(c *gin.Context) {
	probability, err := strconv.ParseFloat(c.Query("probability"), 64)
	if err != nil || math.IsNaN(probability) || math.IsInf(probability, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid probability"})
		return
	}

	class := planner.ClassifyRisk(probability)
	c.JSON(http.StatusOK, RiskClassResponse{
		Probability: probability,
		RiskLevel:   string(class.Band),
		Color:       class.Color,
		Label:       class.Label,
	})
}

// @Summary Get caller history
// @Description Get recent route searches and location checks of the authenticated caller. Requires API key.
// @Tags Navigation
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max items per list" default(20)
// @Success 200 {object} models.History
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /me/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	log := h.logger.WithField("method", "getHistory")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	history, err := h.navigationService.History(c.Request.Context(), callerID(c), limit)
	if err != nil {
		h.respondError(c, log, err, "Failed to get history from service")
		return
	}
	c.JSON(http.StatusOK, history)
}

// @Summary Create a new hazard zone
// @Description Register a sinkhole risk area. Requires API key.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hazard body CreateHazardRequest true "Hazard creation request"
// @Success 201 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [post]
func (h *Handler) createHazard(c *gin.Context) {
	var input CreateHazardRequest
	log := h.logger.WithField("method", "createHazard")

	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToHazardModel(input)
	if err := h.hazardService.CreateHazard(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to create hazard in service")
		return
	}
	c.JSON(http.StatusCreated, ModelToHazardResponse(model))
}

// @Summary Get a list of hazard zones
// @Description Get a paginated list of all hazard zones. Requires API key.
// @Tags Hazards
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} HazardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards [get]
func (h *Handler) listHazards(c *gin.Context) {
	log := h.logger.WithField("method", "listHazards")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	hazards, err := h.hazardService.ListHazards(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "Failed to list hazards from service")
		return
	}
	c.JSON(http.StatusOK, ModelsToHazardResponses(hazards))
}

// @Summary Get hazard zone by ID
// @Description Get a single hazard zone by its ID. Requires API key.
// @Tags Hazards
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hazard ID"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [get]
func (h *Handler) getHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "getHazard").WithField("id", id)

	hazard, err := h.hazardService.GetHazard(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err, "Failed to get hazard from service")
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(hazard))
}

// @Summary Update an existing hazard zone
// @Description Update a hazard zone by ID. Requires API key.
// @Tags Hazards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Hazard ID"
// @Param hazard body UpdateHazardRequest true "Hazard update request"
// @Success 200 {object} HazardResponse
// @Failure 400 {object} map[string]string "Invalid hazard ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [put]
func (h *Handler) updateHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "updateHazard").WithField("id", id)

	var input UpdateHazardRequest
	if !h.bind(c, log, &input) {
		return
	}

	model := DTOToHazardModel(input)
	model.ID = id

	if err := h.hazardService.UpdateHazard(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "Failed to update hazard in service")
		return
	}
	c.JSON(http.StatusOK, ModelToHazardResponse(model))
}

// @Summary Deactivate a hazard zone
// @Description Deactivate a hazard zone by its ID. Inactive zones are ignored by route planning. Requires API key.
// @Tags Hazards
// @Security ApiKeyAuth
// @Param id path string true "Hazard ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid hazard ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Hazard not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/{id} [delete]
func (h *Handler) deleteHazard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hazard ID"})
		return
	}
	log := h.logger.WithField("method", "deleteHazard").WithField("id", id)

	if err := h.hazardService.DeactivateHazard(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "Failed to deactivate hazard in service")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get user statistics
// @Description Get the number of distinct callers active in the configured time window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /hazards/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	userCount, err := h.navigationService.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "Failed to get stats from service")
		return
	}
	c.JSON(http.StatusOK, StatsResponse{UserCount: userCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind разбирает JSON и проверяет теги validate, при ошибке отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError отображает ошибки сервиса на HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, models.ErrInvalidCoordinate),
		errors.Is(err, models.ErrInvalidHazard),
		errors.Is(err, models.ErrOutsideArea):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn(msg)
		c.JSON(http.StatusNotFound, gin.H{"error": "hazard not found"})
	default:
		log.WithError(err).Error(msg)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
