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

type DrawerHistoryHandler struct {
	cmds commands.DrawerHistoryCommands
	q    queries.DrawerHistoryQueries
}

func NewDrawerHistoryHandler(cmds commands.DrawerHistoryCommands, q queries.DrawerHistoryQueries) *DrawerHistoryHandler {
	return &DrawerHistoryHandler{cmds: cmds, q: q}
}

// @Summary Backfill drawer history
// @Tags cash-drawer-history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDrawerHistoryRequest true "Create history request"
// @Success 201 {object} resdto.Envelope[resdto.DrawerHistoryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-drawer-history [post]
func (h *DrawerHistoryHandler) Create(c *gin.Context) {
	var req reqdto.CreateDrawerHistoryRequest
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
	h.respond(c, http.StatusCreated, "Cash drawer history created successfully", merchantID, id)
}

// @Summary List drawer history
// @Tags cash-drawer-history
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-100, default 10)"
// @Param sortBy query string false "created_at | opening_balance | closing_balance | status"
// @Param sortOrder query string false "ASC | DESC"
// @Param cashDrawerId query string false "Cash drawer ID"
// @Param openedBy query string false "Opened by"
// @Param closedBy query string false "Closed by"
// @Param status query string false "ACTIVE | DELETED"
// @Param createdDate query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.ListEnvelope[resdto.DrawerHistoryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cash-drawer-history [get]
func (h *DrawerHistoryHandler) List(c *gin.Context) {
	page, err := reqdto.PageFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filter, err := reqdto.DrawerHistoryFilterFromQuery(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	result, err := h.q.List(c.Request.Context(), middleware.GetMerchantID(c), filter, page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	items, err := resdto.FromDrawerHistoryList(result.Items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListEnvelope(http.StatusOK, "Cash drawer history retrieved successfully", items, result.Meta))
}

// @Summary Get drawer history entry
// @Tags cash-drawer-history
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Success 200 {object} resdto.Envelope[resdto.DrawerHistoryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-drawer-history/{id} [get]
func (h *DrawerHistoryHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash drawer history retrieved successfully", middleware.GetMerchantID(c), id)
}

// @Summary Correct drawer history actors
// @Tags cash-drawer-history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Param request body reqdto.UpdateDrawerHistoryRequest true "Update history request"
// @Success 200 {object} resdto.Envelope[resdto.DrawerHistoryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cash-drawer-history/{id} [put]
func (h *DrawerHistoryHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	var req reqdto.UpdateDrawerHistoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, bindError(bindErr))
		return
	}
	merchantID := middleware.GetMerchantID(c)
	if err = h.cmds.Update(c.Request.Context(), merchantID, id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, "Cash drawer history updated successfully", merchantID, id)
}

// @Summary Delete drawer history entry
// @Tags cash-drawer-history
// @Produce json
// @Security BearerAuth
// @Param id path string true "History ID"
// @Success 200 {object} resdto.Envelope[resdto.DrawerHistoryResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cash-drawer-history/{id} [delete]
func (h *DrawerHistoryHandler) Delete(c *gin.Context) {
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
	h.respond(c, http.StatusOK, "Cash drawer history deleted successfully", merchantID, id)
}

func (h *DrawerHistoryHandler) respond(c *gin.Context, status int, msg string, merchantID, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), merchantID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	data, err := resdto.FromDrawerHistoryView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.NewEnvelope(status, msg, data))
}
