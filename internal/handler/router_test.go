//go:build unit

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cashdrawer-api/internal/domain/ledger"
	"cashdrawer-api/internal/handler"
	"cashdrawer-api/internal/handler/api"
	"cashdrawer-api/internal/handler/middleware"
	"cashdrawer-api/internal/pkg/config"
	"cashdrawer-api/internal/usecase"
	"cashdrawer-api/internal/usecase/shared"
	commandsmock "cashdrawer-api/tests/mock/commands"
	queriesmock "cashdrawer-api/tests/mock/queries"
	usecasemock "cashdrawer-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerDeps struct {
	engine    *gin.Engine
	validator *usecasemock.MockTokenValidator
	txCmds    *commandsmock.MockCashTransactionCommands
}

func newRouter(t *testing.T) routerDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	deps := routerDeps{
		engine:    gin.New(),
		validator: usecasemock.NewMockTokenValidator(ctrl),
		txCmds:    commandsmock.NewMockCashTransactionCommands(ctrl),
	}
	handlers := handler.Handlers{
		CashDrawer: api.NewCashDrawerHandler(
			commandsmock.NewMockCashDrawerCommands(ctrl), queriesmock.NewMockCashDrawerQueries(ctrl)),
		CashTransaction: api.NewCashTransactionHandler(
			deps.txCmds, queriesmock.NewMockCashTransactionQueries(ctrl)),
		DrawerHistory: api.NewDrawerHistoryHandler(
			commandsmock.NewMockDrawerHistoryCommands(ctrl), queriesmock.NewMockDrawerHistoryQueries(ctrl)),
	}
	cfg := config.NewTestConfig()
	handler.NewRouter(deps.engine, cfg, middleware.NewLogger(cfg.Log), handlers,
		middleware.NewAuthMiddleware(deps.validator))
	return deps
}

func TestNewRouter_RegistersResourceRoutes(t *testing.T) {
	deps := newRouter(t)

	got := map[string]bool{}
	for _, r := range deps.engine.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	want := []string{"GET /health"}
	for _, base := range []string{"/api/cash-drawers", "/api/cash-transactions", "/api/cash-drawer-history"} {
		want = append(want,
			"POST "+base,
			"GET "+base,
			"GET "+base+"/:id",
			"PUT "+base+"/:id",
			"DELETE "+base+"/:id",
		)
	}
	for _, route := range want {
		assert.True(t, got[route], "missing route %s", route)
	}
	assert.Len(t, got, len(want))
}

func TestNewRouter_DispatchesBehindAuth(t *testing.T) {
	t.Run("authenticated delete reaches the ledger", func(t *testing.T) {
		deps := newRouter(t)
		merchantID := uuid.New()
		txID := uuid.New()

		deps.validator.EXPECT().ValidateToken("good").
			Return(usecase.Identity{CollaboratorID: uuid.New(), MerchantID: merchantID, Role: "cashier"}, nil)
		deps.txCmds.EXPECT().Delete(gomock.Any(), merchantID, txID).
			Return(shared.Classify(ledger.ErrBoundaryNotRemovable))

		req := httptest.NewRequest(http.MethodDelete, "/api/cash-transactions/"+txID.String(), http.NoBody)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		deps.engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("missing token stops before the handler", func(t *testing.T) {
		deps := newRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/cash-transactions/"+uuid.NewString(), http.NoBody)
		w := httptest.NewRecorder()
		deps.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
