package routes

import (
	"VCS_Uptime_Monitor/internal/monitor-service/api/handler"
	"VCS_Uptime_Monitor/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ScopeMonitorsRead  = "monitors:read"
	ScopeMonitorsWrite = "monitors:write"
)

func SetUpMonitorRoutes(r *gin.Engine, monitorHandler handler.MonitorHandler, proxyHandler handler.ProxyHandler, m middleware.AuthMiddleware) {
	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	monitorRoutes := r.Group("/monitors", m.ValidateAndExtractJwt())
	monitorRoutes.GET("", m.CheckUserPermission(ScopeMonitorsRead), monitorHandler.GetMonitors())
	monitorRoutes.POST("", m.CheckUserPermission(ScopeMonitorsWrite), monitorHandler.CreateMonitor())
	monitorRoutes.PATCH("/:id", m.CheckUserPermission(ScopeMonitorsWrite), monitorHandler.UpdateMonitor())
	monitorRoutes.DELETE("/:id", m.CheckUserPermission(ScopeMonitorsWrite), monitorHandler.DeleteMonitor())
	monitorRoutes.POST("/import", m.CheckUserPermission(ScopeMonitorsWrite), monitorHandler.ImportMonitorsFromExcelFile())
	monitorRoutes.GET("/export", m.CheckUserPermission(ScopeMonitorsRead), monitorHandler.ExportMonitorsToExcelFile())
	monitorRoutes.GET("/ws", m.CheckUserPermission(ScopeMonitorsRead), monitorHandler.StreamStatuses())

	proxyRoutes := r.Group("/proxy-config", m.ValidateAndExtractJwt())
	proxyRoutes.GET("", m.CheckUserPermission(ScopeMonitorsRead), proxyHandler.GetProxyConfig())
	proxyRoutes.PUT("", m.CheckUserPermission(ScopeMonitorsWrite), proxyHandler.SetProxyConfig())
}
