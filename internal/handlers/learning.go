package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type LearningHandler struct {
	learningService services.LearningService
}

func NewLearningHandler(learningService services.LearningService) *LearningHandler {
	return &LearningHandler{learningService: learningService}
}

func (lh *LearningHandler) Start(c *gin.Context) {
	var req struct {
		ScenarioID  uint   `json:"scenario_id"`
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	learningLogID, err := lh.learningService.StartSession(c.Request.Context(), req.UserID, req.ProfileName, req.ScenarioID)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"learning_log_id": learningLogID})
}

func (lh *LearningHandler) Step(c *gin.Context) {
	var req struct {
		LearningLogID uint   `json:"learning_log_id"`
		SceneID       string `json:"sceneId"`
		Question      string `json:"question"`
		Answer        string `json:"answer"`
		Response      string `json:"response"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	row := &types.Answer{
		LearningLogID: req.LearningLogID,
		SceneID:       req.SceneID,
		Question:      req.Question,
		Answer:        req.Answer,
		Response:      req.Response,
	}
	if err := lh.learningService.RecordStep(c.Request.Context(), row); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Step data recorded successfully"})
}

func (lh *LearningHandler) Logs(c *gin.Context) {
	userID := c.Query("user_id")
	profileName := c.Query("profile_name")
	if userID == "" || profileName == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("user_id and profile_name are required"))
		return
	}
	summaries, err := lh.learningService.ListLogs(c.Request.Context(), userID, profileName)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	if summaries == nil {
		summaries = []*types.LearningLogSummary{}
	}
	RespondOK(c, summaries)
}

func (lh *LearningHandler) Answers(c *gin.Context) {
	learningLogID, err := strconv.ParseUint(c.Query("learning_log_id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("learning_log_id must be an integer"))
		return
	}
	answers, err := lh.learningService.Answers(c.Request.Context(), uint(learningLogID))
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, answers)
}
