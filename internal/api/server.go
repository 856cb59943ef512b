// Package api exposes the evaluation engine over HTTP: bounded decimal
// evaluation via REST and unbounded-in-spirit (but capped) digit streaming
// via websocket.
package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/contfrac/reals/internal/expr"
)

// maxEvalDigits caps a single evaluation request. Deciding a digit can
// absorb unboundedly many terms, so the REST surface never exposes an
// uncapped loop.
const maxEvalDigits = 10000

type evalRequest struct {
	Expr   string `json:"expr" binding:"required"`
	Digits int    `json:"digits"`
	Round  bool   `json:"round"`
}

type evalResponse struct {
	ID     string `json:"id"`
	Expr   string `json:"expr"`
	Digits int    `json:"digits"`
	Value  string `json:"value"`
}

// SetupRouter builds the gin router for the evaluation service.
func SetupRouter() *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", handleHealth)
		v1.POST("/eval", handleEval)
		v1.GET("/stream", handleStream)
	}
	return r
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func handleEval(c *gin.Context) {
	var req evalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Digits < 0 || req.Digits > maxEvalDigits {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "digits must be between 0 and 10000",
		})
		return
	}

	x, err := expr.Parse(req.Expr)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	log.Printf("eval %s: %q to %d digits", id, req.Expr, req.Digits)
	c.JSON(http.StatusOK, evalResponse{
		ID:     id,
		Expr:   req.Expr,
		Digits: req.Digits,
		Value:  x.Evaluate(req.Digits, req.Round),
	})
}
