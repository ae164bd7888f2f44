package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lottopay/internal/models/request_models"
	"lottopay/internal/services"
	"lottopay/pkg/utils"
)

type TicketController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketController(ticketService services.TicketServiceInterface) *TicketController {
	return &TicketController{
		ticketService: ticketService,
	}
}

// IssueTicket is called after the payment gateway confirms the transaction;
// the confirmed transaction id is what makes replays idempotent.
func (tc *TicketController) IssueTicket(c *gin.Context) {
	var request request_models.IssueTicketRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	entry, err := tc.ticketService.IssueTicket(c.Request.Context(), userID, request.TransactionID, request.Amount)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Lottery entry recorded")
}

func (tc *TicketController) GetUserTickets(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	entries, err := tc.ticketService.GetUserTickets(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Lottery numbers fetched successfully")
}

func (tc *TicketController) ListPoolNumbers(c *gin.Context) {
	numbers, err := tc.ticketService.ListPoolNumbers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, numbers, "Pool numbers fetched successfully")
}
