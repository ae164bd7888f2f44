package request_models

type SubscribeRequest struct {
	PlanType string `json:"plan_type" binding:"required"`
}

type IssueTicketRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

type ManualWinnerRequest struct {
	Number string `json:"number" binding:"required,len=12,numeric"`
}
