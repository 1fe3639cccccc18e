package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("user_id is required"))
		return
	}
	profiles, err := ph.profileService.ListProfiles(c.Request.Context(), userID)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"profiles": profiles})
}

func (ph *ProfileHandler) Set(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
		IconURL     string `json:"icon_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	row := &types.Profile{
		UserID:      req.UserID,
		ProfileName: req.ProfileName,
		IconURL:     req.IconURL,
	}
	if err := ph.profileService.SetProfile(c.Request.Context(), row); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Profile set successfully"})
}

func (ph *ProfileHandler) Remove(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id"`
		ProfileName string `json:"profile_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	if err := ph.profileService.RemoveProfile(c.Request.Context(), req.UserID, req.ProfileName); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Profile removed successfully"})
}
