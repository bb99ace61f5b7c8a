package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.thinkinpower.net/cardcheck/data"
	"git.thinkinpower.net/cardcheck/middleware"
	"git.thinkinpower.net/cardcheck/route"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

func setMode(mode string) {
	switch mode {
	case data.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case data.RunModeTest:
		gin.SetMode(gin.TestMode)
	case data.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logger.InfoLevel)

	port := flag.Int("p", 8080, "-p 8080")
	mode := flag.String("m", "dev", "-m [dev|test|release]")
	flag.Parse()

	logger.Info("starting http server...")
	setMode(*mode)
	r := gin.New()
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	route.Register(r)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", *port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			logger.Infof("listen: %s", err.Error())
		}
	}()
	logger.Infof("http server up, port: %d", *port)

	// Graceful shutdown on interrupt, 5 second drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server shutdown failure.", err)
	}
	logger.Info("server exit.")
}
