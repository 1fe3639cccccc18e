package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
)

type StatisticsHandler struct {
	statisticsService services.StatisticsService
}

func NewStatisticsHandler(statisticsService services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// Get aggregates the rollup counters for one (user, profile) pair, optionally
// restricted to the inclusive [start_date, end_date] window.
func (sh *StatisticsHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	profileName := c.Query("profile_name")
	if userID == "" || profileName == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("user_id and profile_name are required"))
		return
	}

	start, err := parseDateParam(c.Query("start_date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}
	end, err := parseDateParam(c.Query("end_date"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, err)
		return
	}

	counters, err := sh.statisticsService.Aggregate(c.Request.Context(), userID, profileName, start, end)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, counters)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}
