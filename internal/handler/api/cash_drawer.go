package api

import (
	"net/http"

	reqdto "cashdrawer-api/internal/handler/dto/request"
	resdto "cashdrawer-api/internal/handler/dto/response"
	"cashdrawer-api/internal/handler/httperr"
	"cashdrawer-api/internal/handler/middleware"
	"cashdrawer-api/internal/usecase/commands"
	"cashdrawer-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CashDrawerHandler struct {
	cmds commands.CashDrawerCommands
	q    queries.CashDrawerQueries
}

func NewCashDrawerHandler(cmds commands.CashDrawerCommands, q queries.CashDrawerQueries) *CashDrawerHandler {
	return &CashDrawerHandler{cmds: cmds, q: q}
}

// @Summary Open cash drawer
// @Description Open a drawer session for a shift. Supplying closingBalance and closedBy backfills an already closed drawer.
// @Tags cash-drawers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCashDrawerRequest true "Open cash drawer request"
// @Success 201 {object} resdto.Envelope[resdto.CashDrawerResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-drawers [post]
func (h *CashDrawerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCashDrawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}
	merchantID := middleware.GetMerchantID(c)
	id, err := h.cmds.Open(c.Request.Context(), merchantID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, "Cash drawer created successfully", merchantID, id)
}

// @Summary List cash drawers
// @Description List the merchant's cash drawers. Deleted drawers are listed only with status=DELETED.
// @Tags cash-drawers
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "created_at | opening_balance | current_balance | status"
// @Param sortOrder query string false "ASC | DESC"
// @Param shiftId query string false "Shift ID"
// @Param collaboratorId query string false "Opened or closed by"
// @Param openedBy query string false "Opened by"
// @Param closedBy query string false "Closed by"
// @Param status query string false "OPEN | PAUSE | CLOSE | DELETED"
// @Param createdDate query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.ListEnvelope[resdto.CashDrawerResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cash-drawers [get]
func (h *CashDrawerHandler) List(c *gin.Context) {
	page, err := reqdto.PageFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filter, err := reqdto.CashDrawerFilterFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.q.List(c.Request.Context(), middleware.GetMerchantID(c), filter, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromCashDrawerList(result.Items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListEnvelope(http.StatusOK, "Cash drawers retrieved successfully", items, result.Meta))
}

// @Summary Get cash drawer
// @Tags cash-drawers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash drawer ID"
// @Success 200 {object} resdto.Envelope[resdto.CashDrawerResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-drawers/{id} [get]
func (h *CashDrawerHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash drawer retrieved successfully", middleware.GetMerchantID(c), id)
}

// @Summary Update cash drawer
// @Description Reassign shift or opening collaborator. Balances and state change only through cash transactions.
// @Tags cash-drawers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash drawer ID"
// @Param request body reqdto.UpdateCashDrawerRequest true "Update cash drawer request"
// @Success 200 {object} resdto.Envelope[resdto.CashDrawerResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-drawers/{id} [put]
func (h *CashDrawerHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.UpdateCashDrawerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, bindError(bindErr))
		return
	}
	merchantID := middleware.GetMerchantID(c)
	if err = h.cmds.Update(c.Request.Context(), merchantID, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash drawer updated successfully", merchantID, id)
}

// @Summary Delete cash drawer
// @Description Soft delete. The deleted drawer stays readable by id.
// @Tags cash-drawers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash drawer ID"
// @Success 200 {object} resdto.Envelope[resdto.CashDrawerResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-drawers/{id} [delete]
func (h *CashDrawerHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	merchantID := middleware.GetMerchantID(c)
	if err = h.cmds.Delete(c.Request.Context(), merchantID, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash drawer deleted successfully", merchantID, id)
}

func (h *CashDrawerHandler) respond(c *gin.Context, status int, msg string, merchantID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), merchantID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	data, err := resdto.FromCashDrawerView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.NewEnvelope(status, msg, data))
}
