package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/domain"
	"bluevoyager/internal/flow"
)

var flowStore *flow.Store

// SetFlowStore wires the flow store the handlers act on.
func SetFlowStore(st *flow.Store) {
	flowStore = st
}

type openFlowRequest struct {
	CabinID  string `json:"cabinId"`
	VoyageID int64  `json:"voyageId"`
}

// POST /api/flow
func OpenFlow(c *gin.Context) {
	var req openFlowRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := flowStore.Open(req.CabinID, req.VoyageID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

// GET /api/flow/:id
func GetFlow(c *gin.Context) {
	sess, err := flowStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// POST /api/flow/:id/book
func BookNow(c *gin.Context) {
	sess, err := flowStore.BookNow(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type openCalendarRequest struct {
	Field string `json:"field"`
}

// POST /api/flow/:id/calendar
func OpenCalendar(c *gin.Context) {
	var req openCalendarRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := flowStore.OpenCalendar(c.Param("id"), req.Field)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// GET /api/flow/:id/calendar
func GetFlowCalendar(c *gin.Context) {
	grid, err := flowStore.Grid(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	sess, err := flowStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": grid, "cursor": sess.Calendar})
}

type navigateRequest struct {
	Delta int `json:"delta"`
}

// POST /api/flow/:id/calendar/navigate
func NavigateCalendar(c *gin.Context) {
	var req navigateRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Delta != 1 && req.Delta != -1 {
		RespondDomainError(c, domain.ValidationError{Field: "delta", Msg: "must be 1 or -1"})
		return
	}
	sess, err := flowStore.Navigate(c.Param("id"), req.Delta)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

type selectDayRequest struct {
	Day int `json:"day"`
}

// POST /api/flow/:id/calendar/select
func SelectCalendarDay(c *gin.Context) {
	var req selectDayRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := flowStore.SelectDay(c.Request.Context(), c.Param("id"), req.Day)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// POST /api/flow/:id/calendar/proceed
func ProceedCalendar(c *gin.Context) {
	sess, err := flowStore.Proceed(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// DELETE /api/flow/:id/calendar
func CloseCalendar(c *gin.Context) {
	sess, err := flowStore.CloseCalendar(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// PUT /api/flow/:id/draft
func UpdateDraft(c *gin.Context) {
	var req flow.DraftUpdate
	if !BindJSONOrError(c, &req) {
		return
	}
	sess, err := flowStore.UpdateDraft(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// POST /api/flow/:id/confirm
func ConfirmFlow(c *gin.Context) {
	sess, err := flowStore.Confirm(c.Param("id"))
	if err != nil {
		// The session snapshot rides along so the client can render the
		// toast and the preserved draft.
		if domain.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"session": sess, "error": err.Error()})
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// DELETE /api/flow/:id
func CancelFlow(c *gin.Context) {
	flowStore.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "flow cancelled"})
}
