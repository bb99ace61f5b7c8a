package route

import (
	"net/http"
	"time"

	"git.thinkinpower.net/cardcheck/data"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Register(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("/cardcheck")
	{
		g.GET("/index", func(ctx *gin.Context) {
			ctx.String(http.StatusOK, "Hello cardcheck, date: %s", time.Now().Format(data.DateTimePattern))
		})

		g.GET("/classify/:number", classify)
		g.POST("/validate", validate)
		g.POST("/check", check)
		g.GET("/cvc/:type/:cvc", validCvc)
		g.GET("/expiry/:year/:month", validExpiry)
	}
}
