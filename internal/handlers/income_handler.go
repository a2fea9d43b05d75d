package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/httpresp"
	"github.com/YuliaRizki/nailBook/internal/middleware"
	ucBooking "github.com/YuliaRizki/nailBook/internal/usecase/booking"
)

type IncomeHandler struct {
	createUC *ucBooking.CreateIncomeRecord
}

func NewIncomeHandler(createUC *ucBooking.CreateIncomeRecord) *IncomeHandler {
	return &IncomeHandler{createUC: createUC}
}

type CreateIncomeRequest struct {
	ClientToken string `json:"client_token"`
	Amount      int64  `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Source      string `json:"source"`
}

func (h *IncomeHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Amount and date are required.")
		return
	}

	rec, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateIncomeInput{
		UserID:      userID,
		ClientToken: req.ClientToken,
		Amount:      req.Amount,
		Date:        req.Date,
		Source:      req.Source,
	})
	if err != nil {
		writeBookingError(c, err, "failed_to_create_income", "Could not record the income.")
		return
	}

	httpresp.Created(c, rec)
}
