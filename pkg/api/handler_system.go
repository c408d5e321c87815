package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/inventor-project/symon/pkg/database"
	"github.com/inventor-project/symon/pkg/logfile"
	"github.com/inventor-project/symon/pkg/models"
)

// getSystemStatusHandler handles GET /system/status. The session token is
// guard enough; the response carries no secrets.
func (s *Server) getSystemStatusHandler(c *echo.Context) error {
	if ok, err := s.authorizeRequest(c, "", ""); !ok {
		return err
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	health, err := database.Health(ctx, s.db)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, models.StatusResponse{
			Status:   "unhealthy",
			Database: health,
		})
	}
	return c.JSON(http.StatusOK, models.StatusResponse{
		Status:   "healthy",
		Database: health,
	})
}

// getSystemConfigHandler handles GET /system/config. Only the public
// section is exposed; the session token is guard enough for it.
func (s *Server) getSystemConfigHandler(c *echo.Context) error {
	if ok, err := s.authorizeRequest(c, "", ""); !ok {
		return err
	}
	return c.JSON(http.StatusOK, models.ConfigResponse{
		Options: map[string]map[string]string{"public": s.cfg.Section("public")},
	})
}

// getSystemConfigAllHandler handles GET /system/config/all. Root only; the
// full settings file includes every secret the agent holds.
func (s *Server) getSystemConfigAllHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	return c.JSON(http.StatusOK, models.ConfigResponse{Options: s.cfg.AllSections()})
}

// patchSystemConfigHandler handles PATCH /system/config. Root only. The
// response tells per option whether it was added or updated.
func (s *Server) patchSystemConfigHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	var body models.ConfigChangesRequest
	if err := c.Bind(&body); err != nil {
		return apiError(c, http.StatusBadRequest, "Could not parse the request body.")
	}
	changes, err := s.cfg.SetOptions(body.Options)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	response := models.ConfigChangesResponse{Options: map[string]map[string]string{}}
	for section, opts := range changes {
		response.Options[section] = map[string]string{}
		for option, change := range opts {
			response.Options[section][option] = string(change)
		}
	}
	return c.JSON(http.StatusOK, response)
}

// getSystemOrchestratorsHandler handles GET /system/orchestrators. Root only.
func (s *Server) getSystemOrchestratorsHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	orchestrators, err := s.orchestratorService.GetAllOrchestrators(c.Request().Context())
	if err != nil {
		return mapServiceError(c, err)
	}
	response := models.OrchestratorsResponse{
		Orchestrators: make([]models.OrchestratorResponse, 0, len(orchestrators)),
	}
	for _, o := range orchestrators {
		response.Orchestrators = append(response.Orchestrators, models.NewOrchestratorResponse(o))
	}
	return c.JSON(http.StatusOK, response)
}

// extractLogPage serves one page from a log file in the shared logs shape.
// The requested page size is clamped by the configured ceiling.
func (s *Server) extractLogPage(c *echo.Context, file string) error {
	since := c.QueryParam("since")
	alg := logfile.CompressionAlg(c.QueryParam("compression_alg"))
	maxSize := s.cfg.Int("logging", "api_max_logs_size_int")
	if v := c.QueryParam("max_size"); v != "" {
		requested, err := strconv.Atoi(v)
		if err != nil {
			return apiError(c, http.StatusBadRequest, "max_size must be an integer.")
		}
		if requested < maxSize {
			maxSize = requested
		}
	}
	extracted, err := logfile.GetLines(file, since, maxSize, alg)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, models.LogsResponse{
		Data:           extracted.Lines,
		CompressionAlg: string(alg),
		LastDatetime:   extracted.LastDatetime,
		MoreData:       extracted.MoreData,
	})
}

// getSystemLogsHandler handles GET /system/logs. Root only.
func (s *Server) getSystemLogsHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	return s.extractLogPage(c, s.cfg.String("logging", "logs_file"))
}

// getSystemAccountingHandler handles GET /system/accounting. Root only.
func (s *Server) getSystemAccountingHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	return s.extractLogPage(c, s.cfg.String("accounting", "logs_file"))
}

// getSystemLogsStatsHandler handles GET /system/logs/stats. Root only.
func (s *Server) getSystemLogsStatsHandler(c *echo.Context) error {
	rootKey := s.cfg.String("authorization", "root_password")
	if ok, err := s.authorizeRequest(c, rootKey, ""); !ok {
		return err
	}
	minutes := 60
	if v := c.QueryParam("minutes"); v != "" {
		var err error
		if minutes, err = strconv.Atoi(v); err != nil {
			return apiError(c, http.StatusBadRequest, "minutes must be an integer.")
		}
	}
	stats, err := logfile.Statistics(s.cfg.String("logging", "logs_file"), minutes)
	if err != nil {
		return apiError(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, models.LogsStatsResponse{
		Debug:    stats["debug"],
		Info:     stats["info"],
		Warning:  stats["warning"],
		Error:    stats["error"],
		Critical: stats["critical"],
		Unknown:  stats["unknown"],
	})
}
