package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moduhak/moduhak-backend/internal/apierr"
	"github.com/moduhak/moduhak-backend/internal/services"
	"github.com/moduhak/moduhak-backend/internal/types"
)

type CharacterHandler struct {
	characterService services.CharacterService
}

func NewCharacterHandler(characterService services.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterService: characterService}
}

func (ch *CharacterHandler) Update(c *gin.Context) {
	var req struct {
		UserID      string  `json:"user_id"`
		ProfileName string  `json:"profile_name"`
		Toggle      float64 `json:"toggle"`
		Prop        float64 `json:"prop"`
		EyeShape    float64 `json:"eyeShape"`
		BodyShape   float64 `json:"bodyShape"`
		BodyColor   float64 `json:"bodyColor"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("invalid request body"))
		return
	}
	row := &types.Character{
		UserID:      req.UserID,
		ProfileName: req.ProfileName,
		Toggle:      req.Toggle,
		Prop:        req.Prop,
		EyeShape:    req.EyeShape,
		BodyShape:   req.BodyShape,
		BodyColor:   req.BodyColor,
	}
	if err := ch.characterService.UpdateCharacter(c.Request.Context(), row); err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Character updated successfully"})
}

func (ch *CharacterHandler) Get(c *gin.Context) {
	userID := c.Query("user_id")
	profileName := c.Query("profile_name")
	if userID == "" || profileName == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("user_id and profile_name are required"))
		return
	}
	row, err := ch.characterService.GetCharacter(c.Request.Context(), userID, profileName)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	RespondOK(c, row)
}
