package pprof

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewRouter returns a gin engine serving the runtime profiles under
// /debug/pprof.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Start serves the profiles on addr in the background until the process
// exits.
func Start(addr string) {
	router := NewRouter()
	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil && err != http.ErrServerClosed {
			logx.Errorf("pprof server stopped: %v", err)
		}
	}()
}
