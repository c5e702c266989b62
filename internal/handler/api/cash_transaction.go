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

type CashTransactionHandler struct {
	cmds commands.CashTransactionCommands
	q    queries.CashTransactionQueries
}

func NewCashTransactionHandler(cmds commands.CashTransactionCommands, q queries.CashTransactionQueries) *CashTransactionHandler {
	return &CashTransactionHandler{cmds: cmds, q: q}
}

// @Summary Record cash transaction
// @Description Append a ledger row and apply its effect on the drawer. CLOSE archives the session.
// @Tags cash-transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCashTransactionRequest true "Create cash transaction request"
// @Success 201 {object} resdto.Envelope[resdto.CashTransactionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-transactions [post]
func (h *CashTransactionHandler) Create(c *gin.Context) {
	var req reqdto.CreateCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, bindError(err))
		return
	}
	merchantID := middleware.GetMerchantID(c)
	id, err := h.cmds.Create(c.Request.Context(), merchantID, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, "Cash transaction created successfully", merchantID, id)
}

// @Summary List cash transactions
// @Tags cash-transactions
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "created_at | amount | type | status"
// @Param sortOrder query string false "ASC | DESC"
// @Param cashDrawerId query string false "Cash drawer ID"
// @Param orderId query string false "Order ID"
// @Param type query string false "Transaction type"
// @Param status query string false "ACTIVE | DELETED"
// @Success 200 {object} resdto.ListEnvelope[resdto.CashTransactionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cash-transactions [get]
func (h *CashTransactionHandler) List(c *gin.Context) {
	page, err := reqdto.PageFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filter, err := reqdto.CashTransactionFilterFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.q.List(c.Request.Context(), middleware.GetMerchantID(c), filter, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromCashTransactionList(result.Items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListEnvelope(http.StatusOK, "Cash transactions retrieved successfully", items, result.Meta))
}

// @Summary Get cash transaction
// @Tags cash-transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash transaction ID"
// @Success 200 {object} resdto.Envelope[resdto.CashTransactionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-transactions/{id} [get]
func (h *CashTransactionHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash transaction retrieved successfully", middleware.GetMerchantID(c), id)
}

// @Summary Update cash transaction
// @Description Only orderId and notes can change; type and amount are rejected.
// @Tags cash-transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash transaction ID"
// @Param request body reqdto.UpdateCashTransactionRequest true "Update cash transaction request"
// @Success 200 {object} resdto.Envelope[resdto.CashTransactionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-transactions/{id} [put]
func (h *CashTransactionHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.UpdateCashTransactionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, bindError(bindErr))
		return
	}
	merchantID := middleware.GetMerchantID(c)
	if err = h.cmds.Update(c.Request.Context(), merchantID, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash transaction updated successfully", merchantID, id)
}

// @Summary Delete cash transaction
// @Description Soft delete. Rows carrying a non-zero amount cannot be deleted.
// @Tags cash-transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cash transaction ID"
// @Success 200 {object} resdto.Envelope[resdto.CashTransactionResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-transactions/{id} [delete]
func (h *CashTransactionHandler) Delete(c *gin.Context) {
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
	h.respond(c, http.StatusOK, "Cash transaction deleted successfully", merchantID, id)
}

func (h *CashTransactionHandler) respond(c *gin.Context, status int, msg string, merchantID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), merchantID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	data, err := resdto.FromCashTransactionView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.NewEnvelope(status, msg, data))
}
