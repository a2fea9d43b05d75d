package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/YuliaRizki/nailBook/internal/httperr"
	"github.com/YuliaRizki/nailBook/internal/httpresp"
	"github.com/YuliaRizki/nailBook/internal/middleware"
	ucRevenue "github.com/YuliaRizki/nailBook/internal/usecase/revenue"
)

type RevenueHandler struct {
	windowUC *ucRevenue.FetchWindow
}

func NewRevenueHandler(windowUC *ucRevenue.FetchWindow) *RevenueHandler {
	return &RevenueHandler{windowUC: windowUC}
}

// Window serves the raw records for one date range. Without from/to it
// returns the complete history, which is how the lifetime total is built.
// All summation happens on the client.
func (h *RevenueHandler) Window(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	from := c.Query("from")
	to := c.Query("to")

	win, err := h.windowUC.Execute(c.Request.Context(), userID, from, to)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Dates must look like 2006-01-02.")
			return
		}
		httperr.Internal(c, "failed_to_fetch_window", "Could not load revenue records.")
		return
	}

	httpresp.OK(c, win)
}
