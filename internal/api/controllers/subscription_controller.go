package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lottopay/internal/models/db_models"
	"lottopay/internal/models/request_models"
	"lottopay/internal/services"
	"lottopay/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

func (sc *SubscriptionController) Subscribe(c *gin.Context) {
	var request request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	plan := db_models.PlanType(request.PlanType)
	if !plan.Valid() {
		utils.RespondError(c, http.StatusBadRequest, "plan_type must be basic or premium")
		return
	}

	sub, err := sc.subscriptionService.Subscribe(c.Request.Context(), userID, plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"user_id":   sub.UserID,
		"plan_type": sub.PlanType,
	}, "User subscribed successfully")
}

func (sc *SubscriptionController) Unsubscribe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := sc.subscriptionService.Unsubscribe(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User unsubscribed successfully")
}
