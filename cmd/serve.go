package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"verba/internal/apihandlers"
	"verba/pkg/metrics"
)

var (
	serveAddr string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run verba as an HTTP API server",
	Long: `Starts an HTTP server exposing the posts listing API with filtering,
pagination, and word-frequency processing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		m := metrics.New()

		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(apihandlers.RequestID())
		router.Use(apihandlers.AccessLog())
		router.Use(apihandlers.Metrics(m))

		apiHandler := apihandlers.NewAPIHandler(appInstance)
		apiHandler.Metrics = m

		router.GET("/", apiHandler.RootHandler)
		router.GET("/posts/", apiHandler.ListPostsHandler)
		router.GET("/health", apiHandler.HealthHandler)
		router.GET("/metrics", gin.WrapH(metrics.Handler()))

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		port := servePort
		if port == "" {
			port = appInstance.Config.Server.Port
		}
		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.WithField("addr", listenAddr).Info("starting verba API server")

		if err := router.Run(listenAddr); err != nil {
			return fmt.Errorf("failed to run API server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (defaults to server.addr from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to server.port from config)")
}
