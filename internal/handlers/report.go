package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (rh *ReportHandler) Generate(c *gin.Context) {
	var req struct {
		LearningLogID uint `json:"learning_log_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	generated, err := rh.reportService.GenerateReport(c.Request.Context(), req.LearningLogID)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message":  "AI report generated successfully",
		"report":   generated.Report,
		"counters": generated.Counters,
	})
}

func (rh *ReportHandler) Get(c *gin.Context) {
	learningLogID, err := strconv.ParseUint(c.Query("learning_log_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("learning_log_id must be an integer"))
		return
	}
	report, err := rh.reportService.GetReport(c.Request.Context(), uint(learningLogID))
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, report)
}
