// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accounthandler "stocktrack/internal/feature/account/transport/handler"
	commenthandler "stocktrack/internal/feature/comment/transport/handler"
	portfoliohandler "stocktrack/internal/feature/portfolio/transport/handler"
	stockhandler "stocktrack/internal/feature/stock/transport/handler"
	"stocktrack/internal/platform/http/handler"
	jwtmw "stocktrack/internal/platform/jwt"
)

// NewRouter wires every endpoint to its handler. Routes that act on behalf
// of a user (stock listing, comment creation, the whole portfolio) require a
// bearer token; the rest are open.
func NewRouter(account *accounthandler.AccountHandler, stock *stockhandler.StockHandler,
	comment *commenthandler.CommentHandler, portfolio *portfoliohandler.PortfolioHandler) *gin.Engine {
	r := gin.Default()

	// CORS must be registered before the routes: gin snapshots each route's
	// handler chain at registration time.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")

	// Account: register and login issue tokens, no auth required
	api.POST("/account/register", account.Register)
	api.POST("/account/login", account.Login)

	// Stocks: the filtered listing requires auth, the rest is open
	api.GET("/stock", jwtmw.AuthRequired(), stock.List)
	api.GET("/stock/:id", stock.Get)
	api.POST("/stock", stock.Create)
	api.PUT("/stock/:id", stock.Update)
	api.DELETE("/stock/:id", stock.Delete)
	api.DELETE("/stock", stock.DeleteAll)

	// Comments: creation records the authenticated author
	api.GET("/comment", comment.List)
	api.GET("/comment/:id", comment.Get)
	api.POST("/comment/:stockId", jwtmw.AuthRequired(), comment.Create)
	api.PUT("/comment/:id", comment.Update)
	api.DELETE("/comment/:id", comment.Delete)

	// Portfolio: every route acts on the authenticated user's holdings
	pf := api.Group("/portfolio")
	pf.Use(jwtmw.AuthRequired())
	{
		pf.GET("", portfolio.List)
		pf.POST("", portfolio.Add)
		pf.DELETE("", portfolio.Remove)
	}

	return r
}
