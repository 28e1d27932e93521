package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stocktrack/internal/feature/portfolio/domain/entity"
	"stocktrack/internal/feature/portfolio/usecase"
	stockentity "stocktrack/internal/feature/stock/domain/entity"
	jwtmw "stocktrack/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// mockPortfolioUsecase is a mock implementation of the PortfolioUsecase interface.
type mockPortfolioUsecase struct {
	ListHoldingsFunc  func(ctx context.Context, userID uint) ([]stockentity.Stock, error)
	AddHoldingFunc    func(ctx context.Context, userID uint, symbol string) (*entity.Holding, error)
	RemoveHoldingFunc func(ctx context.Context, userID uint, symbol string) error
}

func (m *mockPortfolioUsecase) ListHoldings(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
	if m.ListHoldingsFunc != nil {
		return m.ListHoldingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockPortfolioUsecase) AddHolding(ctx context.Context, userID uint, symbol string) (*entity.Holding, error) {
	if m.AddHoldingFunc != nil {
		return m.AddHoldingFunc(ctx, userID, symbol)
	}
	return nil, usecase.ErrStockNotFound
}

func (m *mockPortfolioUsecase) RemoveHolding(ctx context.Context, userID uint, symbol string) error {
	if m.RemoveHoldingFunc != nil {
		return m.RemoveHoldingFunc(ctx, userID, symbol)
	}
	return usecase.ErrNotHeld
}

// newRouter wires the handler behind a stand-in for the auth middleware that
// injects the given user id. A nil id simulates an unauthenticated request
// slipping past the middleware.
func newRouter(uc *mockPortfolioUsecase, authedUser *uint) *gin.Engine {
	h := NewPortfolioHandler(uc)
	r := gin.New()
	identity := func(c *gin.Context) {
		if authedUser != nil {
			c.Set(jwtmw.ContextUserID, *authedUser)
		}
	}
	r.GET("/api/portfolio", identity, h.List)
	r.POST("/api/portfolio", identity, h.Add)
	r.DELETE("/api/portfolio", identity, h.Remove)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPortfolioHandler_List(t *testing.T) {
	authedUser := uint(7)

	t.Run("returns the user's holdings as stock records", func(t *testing.T) {
		uc := &mockPortfolioUsecase{
			ListHoldingsFunc: func(ctx context.Context, userID uint) ([]stockentity.Stock, error) {
				assert.Equal(t, authedUser, userID)
				return []stockentity.Stock{
					{ID: 2, Symbol: "AAPL", CompanyName: "Apple"},
					{ID: 5, Symbol: "MSFT", CompanyName: "Microsoft"},
				}, nil
			},
		}

		w := do(newRouter(uc, &authedUser), http.MethodGet, "/api/portfolio")

		require.Equal(t, http.StatusOK, w.Code)

		var out []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "AAPL", out[0]["symbol"])
	})

	t.Run("empty portfolio is an empty array", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, &authedUser), http.MethodGet, "/api/portfolio")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, nil), http.MethodGet, "/api/portfolio")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPortfolioHandler_Add(t *testing.T) {
	authedUser := uint(7)

	t.Run("successful add is 201", func(t *testing.T) {
		uc := &mockPortfolioUsecase{
			AddHoldingFunc: func(ctx context.Context, userID uint, symbol string) (*entity.Holding, error) {
				assert.Equal(t, authedUser, userID)
				assert.Equal(t, "AAPL", symbol)
				return &entity.Holding{UserID: userID, StockID: 2}, nil
			},
		}

		w := do(newRouter(uc, &authedUser), http.MethodPost, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown symbol is 404", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, &authedUser), http.MethodPost, "/api/portfolio?symbol=NOPE")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Stock not found")
	})

	t.Run("held symbol is 400", func(t *testing.T) {
		uc := &mockPortfolioUsecase{
			AddHoldingFunc: func(ctx context.Context, userID uint, symbol string) (*entity.Holding, error) {
				return nil, usecase.ErrAlreadyHeld
			},
		}

		w := do(newRouter(uc, &authedUser), http.MethodPost, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Stock already in portfolio")
	})

	t.Run("store failure is 500", func(t *testing.T) {
		uc := &mockPortfolioUsecase{
			AddHoldingFunc: func(ctx context.Context, userID uint, symbol string) (*entity.Holding, error) {
				return nil, assert.AnError
			},
		}

		w := do(newRouter(uc, &authedUser), http.MethodPost, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Could not create")
	})

	t.Run("missing symbol is 400", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, &authedUser), http.MethodPost, "/api/portfolio")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, nil), http.MethodPost, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPortfolioHandler_Remove(t *testing.T) {
	authedUser := uint(7)

	t.Run("successful remove is 200", func(t *testing.T) {
		uc := &mockPortfolioUsecase{
			RemoveHoldingFunc: func(ctx context.Context, userID uint, symbol string) error {
				assert.Equal(t, authedUser, userID)
				assert.Equal(t, "AAPL", symbol)
				return nil
			},
		}

		w := do(newRouter(uc, &authedUser), http.MethodDelete, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not-held symbol is 400", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, &authedUser), http.MethodDelete, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Stock not in portfolio")
	})

	t.Run("missing symbol is 400", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, &authedUser), http.MethodDelete, "/api/portfolio")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing identity is 401", func(t *testing.T) {
		w := do(newRouter(&mockPortfolioUsecase{}, nil), http.MethodDelete, "/api/portfolio?symbol=AAPL")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
