package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lottopay/internal/services"
	"lottopay/pkg/utils"
)

type RewardController struct {
	rewardService services.RewardServiceInterface
}

func NewRewardController(rewardService services.RewardServiceInterface) *RewardController {
	return &RewardController{
		rewardService: rewardService,
	}
}

func (rc *RewardController) CheckReward(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	reward, err := rc.rewardService.CheckReward(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "You have not won the lottery"
	if reward.IsWinner {
		message = "Congratulations, you hold the winning number"
	}
	utils.RespondSuccess(c, reward, message)
}
