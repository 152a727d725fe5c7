package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tonsuimining/platform/internal/domain/entity"
	investmentUseCase "github.com/tonsuimining/platform/internal/domain/usecase/investment"
	ledgerUseCase "github.com/tonsuimining/platform/internal/domain/usecase/ledger"
	pinUseCase "github.com/tonsuimining/platform/internal/domain/usecase/pin"
	userUseCase "github.com/tonsuimining/platform/internal/domain/usecase/user"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/api/handler"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/logger"
	"github.com/tonsuimining/platform/internal/infrastructure/adapter/pingen"
	timeadapter "github.com/tonsuimining/platform/internal/infrastructure/adapter/time"
	"github.com/tonsuimining/platform/internal/infrastructure/auth"
	"github.com/tonsuimining/platform/internal/infrastructure/config"
	persistencemocks "github.com/tonsuimining/platform/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router   *gin.Engine
	tokens   *auth.TokenManager
	uow      *persistencemocks.MockUnitOfWork
	planRepo *persistencemocks.MockPlanRepository
}

func newRouterFixture(t *testing.T) *routerFixture {
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	tp := timeadapter.NewRealTimeProvider()
	tokens := auth.NewTokenManager(&config.AuthConfig{
		Secret:      "route-test-secret",
		Issuer:      "tonsuimining-test",
		TokenExpiry: time.Hour,
	}, tp)
	hasher := auth.NewBcryptHasher(4)

	f := &routerFixture{
		tokens:   tokens,
		uow:      persistencemocks.NewMockUnitOfWork(t),
		planRepo: persistencemocks.NewMockPlanRepository(t),
	}

	userRepo := persistencemocks.NewMockUserRepository(t)
	auditRepo := persistencemocks.NewMockAuditRepository(t)

	userService := userUseCase.NewService(userRepo, auditRepo, hasher, tp, log)
	ledgerService := ledgerUseCase.NewService(f.uow, tp, log)
	pinService := pinUseCase.NewService(f.uow, pingen.NewCryptoGenerator(), tp, log)
	investmentService := investmentUseCase.NewService(f.uow, tp, log)

	f.router = gin.New()
	SetupRoutes(f.router, tokens, log,
		handler.NewAuthHandler(userService, tokens, log),
		handler.NewLedgerHandler(ledgerService, log),
		handler.NewPinHandler(pinService, tp, log),
		handler.NewInvestmentHandler(investmentService, tp, log),
	)
	return f
}

func (f *routerFixture) request(t *testing.T, method, path, token string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestPlanCatalogIsPublic(t *testing.T) {
	f := newRouterFixture(t)

	f.uow.EXPECT().GetPlanRepository(mock.Anything).Return(f.planRepo).Once()
	f.planRepo.EXPECT().List(mock.Anything, true).
		Return([]*entity.Plan{{ID: 1, Name: "Starter", ROIPercentage: 10, DurationDays: 7, MinAmountInCents: 5000, Active: true}}, nil).Once()

	w := f.request(t, http.MethodGet, "/api/v1/plans", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Starter")
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/api/v1/me", "/api/v1/transactions", "/api/v1/investments"} {
		w := f.request(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	f := newRouterFixture(t)

	token, err := f.tokens.Issue(7, entity.RoleUser)
	require.NoError(t, err)

	for _, path := range []string{"/api/v1/admin/plans", "/api/v1/admin/transactions", "/api/v1/admin/pins"} {
		w := f.request(t, http.MethodGet, path, token)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}
