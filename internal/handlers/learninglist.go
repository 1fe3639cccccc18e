package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
)

type LearningListHandler struct {
	listService services.LearningListService
}

func NewLearningListHandler(listService services.LearningListService) *LearningListHandler {
	return &LearningListHandler{listService: listService}
}

func (llh *LearningListHandler) Add(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
		Title       string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	if err := llh.listService.Add(c.Request.Context(), req.UserID, req.ProfileName, req.Title); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Learning list entry added successfully"})
}

func (llh *LearningListHandler) Scenarios(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	titles, err := llh.listService.Titles(c.Request.Context(), req.UserID, req.ProfileName)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	if titles == nil {
		titles = []string{}
	}
	RespondOK(c, gin.H{"titles": titles})
}

func (llh *LearningListHandler) Remove(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
		Title       string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	if err := llh.listService.Remove(c.Request.Context(), req.UserID, req.ProfileName, req.Title); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Learning list entry removed successfully"})
}
