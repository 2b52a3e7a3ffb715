package server

import (
	"fmt"
	"net/http"

	"txnloader/progress"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const (
	EndPointHealth   = "/health"
	EndPointProgress = "/progress"
)

// StatusServer exposes the live progress of the running load over HTTP.
type StatusServer struct {
	agg *progress.Aggregator
}

// NewStatusServer returns a status server reading from the aggregator.
func NewStatusServer(agg *progress.Aggregator) *StatusServer {
	return &StatusServer{agg: agg}
}

// Router builds the gin router with all endpoints registered.
func (s *StatusServer) Router() *gin.Engine {
	router := gin.Default()
	router.GET(EndPointHealth, s.Health)
	router.GET(EndPointProgress, s.Progress)
	return router
}

// Start serves in the background for the lifetime of the process. A server
// failure is logged but never aborts the load.
func (s *StatusServer) Start(port int) {
	router := s.Router()
	go func() {
		if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
			log.Errorf("Status server stopped: %v", err)
		}
	}()
}

func (s *StatusServer) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *StatusServer) Progress(c *gin.Context) {
	c.JSON(http.StatusOK, s.agg.Snapshot())
}
