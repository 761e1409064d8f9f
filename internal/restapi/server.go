// Package restapi exposes the core sliding-median entry point over HTTP,
// mirroring the shape of the teacher's internal/rest/serve.go: bind a JSON
// request body, invoke the core package, respond with JSON or a mapped
// error status. This is a peripheral external collaborator per spec.md
// §1/§6 ("language-binding shims ... OUT of scope") — it exists only to
// give the gin dependency a concrete, exercised home and carries no
// engine-correctness logic of its own.
package restapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	slidingmedian "github.com/JensT1999/Sliding-Median-Window"
)

// medianRequest is the JSON body accepted by POST /api/v1/median.
type medianRequest struct {
	X         []float64 `json:"x" binding:"required"`
	W         int       `json:"w" binding:"required"`
	S         int       `json:"s"`
	IgnoreNaN bool      `json:"ignoreNaN"`
}

type medianResponse struct {
	Y []float64 `json:"y"`
}

// NewRouter builds the gin engine for the debug HTTP shim. Serve wraps
// this for the common case of listening on the default address.
func NewRouter() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/median", postMedian)
		}
	}
	return r
}

// Serve starts the HTTP shim on 0.0.0.0:8080, like the teacher's
// internal/rest/serve.go Serve().
func Serve() error {
	return NewRouter().Run()
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func postMedian(c *gin.Context) {
	var req medianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s := req.S
	if s == 0 {
		s = 1
	}
	m := slidingmedian.OutputLen(len(req.X), req.W, s)
	if m <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window/stride combination yields no output"})
		return
	}
	y := make([]float64, m)
	if !slidingmedian.SlidingMedian(req.X, req.W, s, req.IgnoreNaN, y) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid x/w/s combination"})
		return
	}
	c.JSON(http.StatusOK, medianResponse{Y: y})
}
