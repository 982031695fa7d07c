package handler

import (
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/request"
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/response"
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProxyHandler interface {
	GetProxyConfig() gin.HandlerFunc
	SetProxyConfig() gin.HandlerFunc
}

type proxyHandler struct {
	monitorService service.MonitorService
	logger         Logger
}

func newGlobalProxyResponse(cfg *model.ProxyConfig) response.GlobalProxyResponse {
	return response.GlobalProxyResponse{
		Enabled:     !cfg.IsEmpty(),
		ProxyConfig: response.NewProxyConfigResponse(cfg),
	}
}

func (h *proxyHandler) GetProxyConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, newGlobalProxyResponse(h.monitorService.GetProxyConfig(c)))
	}
}

func (h *proxyHandler) SetProxyConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.GlobalProxyRequest
		if !bindJSON(c, &req) {
			return
		}
		var cfg *model.ProxyConfig
		if req.Host != "" {
			cfg = &model.ProxyConfig{
				Host:     req.Host,
				Port:     req.Port,
				Username: req.Username,
				Password: req.Password,
			}
		}
		if err := h.monitorService.SetProxyConfig(c, cfg); err != nil {
			if errors.Is(err, apperrors.ErrInvalidProxyConfig) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid proxy config",
				})
				return
			}
			err = fmt.Errorf("ProxyHandler.SetProxyConfig: %w", err)
			h.logger.LoggingError(c, err, "failed to set global proxy", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, newGlobalProxyResponse(cfg))
	}
}

func NewProxyHandler(logger *zap.Logger, monitorService service.MonitorService) ProxyHandler {
	return &proxyHandler{
		monitorService: monitorService,
		logger:         NewLogger(logger),
	}
}
