// Package dto defines data transfer objects for the stock feature's HTTP transport layer.
package dto

import (
	"github.com/shopspring/decimal"

	commentdto "stocktrack/internal/feature/comment/transport/http/dto"
	"stocktrack/internal/feature/stock/domain/entity"
	"stocktrack/internal/feature/stock/usecase"
)

// StockQueryParams binds the filter/sort/page query parameters of GET /api/stock.
// Page parameters below 1 are rejected at the binding layer; absent parameters
// fall back to page 1 with 20 stocks per page.
type StockQueryParams struct {
	Symbol       string `form:"symbol"`
	CompanyName  string `form:"companyName"`
	SortBy       string `form:"sortBy"`
	IsDescending bool   `form:"isDescending"`
	PageNumber   int    `form:"pageNumber,default=1" binding:"gte=1"`
	PageSize     int    `form:"pageSize,default=20" binding:"gte=1"`
}

// Query maps the bound parameters to the usecase filter specification.
func (p StockQueryParams) Query() usecase.StockQuery {
	return usecase.StockQuery{
		Symbol:      p.Symbol,
		CompanyName: p.CompanyName,
		SortBy:      p.SortBy,
		Descending:  p.IsDescending,
		PageNumber:  p.PageNumber,
		PageSize:    p.PageSize,
	}
}

// CreateStockReq represents the request body for creating a stock.
type CreateStockReq struct {
	Symbol      string          `json:"symbol" binding:"required,max=20"`
	CompanyName string          `json:"companyName" binding:"required,max=255"`
	Purchase    decimal.Decimal `json:"purchase"`
	LastDiv     decimal.Decimal `json:"lastDiv"`
	Industry    string          `json:"industry" binding:"max=255"`
	MarketCap   int64           `json:"marketCap" binding:"gte=0"`
}

// UpdateStockReq represents the request body for updating a stock.
// It names exactly the mutable fields; the id and relations never change.
type UpdateStockReq struct {
	Symbol      string          `json:"symbol" binding:"required,max=20"`
	CompanyName string          `json:"companyName" binding:"required,max=255"`
	Purchase    decimal.Decimal `json:"purchase"`
	LastDiv     decimal.Decimal `json:"lastDiv"`
	Industry    string          `json:"industry" binding:"max=255"`
	MarketCap   int64           `json:"marketCap" binding:"gte=0"`
}

// Entity maps a create request to a new stock entity.
func (r CreateStockReq) Entity() entity.Stock {
	return entity.Stock{
		Symbol:      r.Symbol,
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

// Update maps an update request to the usecase field set.
func (r UpdateStockReq) Update() usecase.StockUpdate {
	return usecase.StockUpdate{
		Symbol:      r.Symbol,
		CompanyName: r.CompanyName,
		Purchase:    r.Purchase,
		LastDiv:     r.LastDiv,
		Industry:    r.Industry,
		MarketCap:   r.MarketCap,
	}
}

// StockResp is the projection of a stock exposed to callers, carrying its
// comments with resolved authors.
type StockResp struct {
	ID          uint                     `json:"id"`
	Symbol      string                   `json:"symbol"`
	CompanyName string                   `json:"companyName"`
	Purchase    decimal.Decimal          `json:"purchase"`
	LastDiv     decimal.Decimal          `json:"lastDiv"`
	Industry    string                   `json:"industry"`
	MarketCap   int64                    `json:"marketCap"`
	Comments    []commentdto.CommentResp `json:"comments"`
}

// NewStockResp maps a stock entity to its response projection.
func NewStockResp(s entity.Stock) StockResp {
	comments := make([]commentdto.CommentResp, 0, len(s.Comments))
	for _, c := range s.Comments {
		comments = append(comments, commentdto.NewCommentResp(c))
	}
	return StockResp{
		ID:          s.ID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Purchase:    s.Purchase,
		LastDiv:     s.LastDiv,
		Industry:    s.Industry,
		MarketCap:   s.MarketCap,
		Comments:    comments,
	}
}
