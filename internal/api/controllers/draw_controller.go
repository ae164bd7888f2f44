package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lottopay/internal/models/request_models"
	"lottopay/internal/services"
	"lottopay/pkg/utils"
)

type DrawController struct {
	drawService services.DrawServiceInterface
}

func NewDrawController(drawService services.DrawServiceInterface) *DrawController {
	return &DrawController{
		drawService: drawService,
	}
}

func (dc *DrawController) SelectWinner(c *gin.Context) {
	winner, err := dc.drawService.SelectWinner(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, winner, "Winner selected successfully")
}

func (dc *DrawController) SelectWinnerManual(c *gin.Context) {
	var request request_models.ManualWinnerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "number must be a 12-digit string")
		return
	}

	winner, err := dc.drawService.SelectWinnerManual(c.Request.Context(), request.Number)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, winner, "Winner manually selected")
}

func (dc *DrawController) ClearPool(c *gin.Context) {
	removed, err := dc.drawService.ClearPool(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"removed_entries": removed}, "Non-winning lottery data cleared")
}

func (dc *DrawController) Stats(c *gin.Context) {
	stats, err := dc.drawService.Stats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Lottery stats fetched successfully")
}
