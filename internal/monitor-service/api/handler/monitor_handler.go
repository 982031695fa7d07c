package handler

import (
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/request"
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/response"
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/publisher"
	"VCS_Uptime_Monitor/internal/monitor-service/service"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type MonitorHandler interface {
	GetMonitors() gin.HandlerFunc
	CreateMonitor() gin.HandlerFunc
	UpdateMonitor() gin.HandlerFunc
	DeleteMonitor() gin.HandlerFunc
	ImportMonitorsFromExcelFile() gin.HandlerFunc
	ExportMonitorsToExcelFile() gin.HandlerFunc
	StreamStatuses() gin.HandlerFunc
}

type monitorHandler struct {
	monitorService service.MonitorService
	hub            publisher.Hub
	logger         Logger
	validator      *validator.Validate
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("The %s field must not be empty", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// validateRequest runs the validate tags of req. Callers normalize fields such
// as the method before calling it.
func (h *monitorHandler) validateRequest(c *gin.Context, req interface{}) bool {
	if err := h.validator.Struct(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

func normalizeMethod(method string) string {
	return strings.ToUpper(strings.TrimSpace(method))
}

func toProxyConfig(req *request.ProxyConfigRequest) *model.ProxyConfig {
	if req == nil {
		return nil
	}
	return &model.ProxyConfig{
		Host:     req.Host,
		Port:     req.Port,
		Username: req.Username,
		Password: req.Password,
	}
}

func (h *monitorHandler) GetMonitors() gin.HandlerFunc {
	return func(c *gin.Context) {
		monitors := h.monitorService.GetMonitors(c)
		res := make([]response.MonitorInfoResponse, 0, len(monitors))
		for _, m := range monitors {
			res = append(res, response.NewMonitorInfoResponse(m))
		}
		c.JSON(http.StatusOK, res)
	}
}

func (h *monitorHandler) CreateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.MonitorRequest
		if !bindJSON(c, &req) {
			return
		}
		req.Method = normalizeMethod(req.Method)
		if !h.validateRequest(c, req) {
			return
		}
		active := true
		if req.Active != nil {
			active = *req.Active
		}
		newMonitor := model.Monitor{
			Name:              req.Name,
			URL:               req.URL,
			Method:            req.Method,
			Frequency:         *req.Frequency,
			Active:            active,
			IgnoreGlobalProxy: req.IgnoreGlobalProxy,
			ProxyConfig:       toProxyConfig(req.ProxyConfig),
		}
		res, err := h.monitorService.AddMonitor(c, newMonitor)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMonitorAlreadyExists):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Monitor already exists",
				})
			case errors.Is(err, apperrors.ErrInvalidMonitor):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid monitor",
				})
			default:
				err = fmt.Errorf("MonitorHandler.CreateMonitor: %w", err)
				h.logger.LoggingError(c, err, "failed to create monitor", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, response.NewMonitorInfoResponse(res))
	}
}

func (h *monitorHandler) UpdateMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateMonitorRequest
		if !bindJSON(c, &req) {
			return
		}
		if req.Method != nil {
			method := normalizeMethod(*req.Method)
			req.Method = &method
		}
		if !h.validateRequest(c, req) {
			return
		}
		id := c.Param("id")
		update := service.MonitorUpdate{
			Name:              req.Name,
			URL:               req.URL,
			Method:            req.Method,
			Frequency:         req.Frequency,
			Active:            req.Active,
			IgnoreGlobalProxy: req.IgnoreGlobalProxy,
			ProxyConfig:       toProxyConfig(req.ProxyConfig),
			ClearProxyConfig:  req.ClearProxyConfig,
		}
		updated, err := h.monitorService.UpdateMonitor(c, id, update)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrMonitorNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
			case errors.Is(err, apperrors.ErrInvalidMonitor):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid monitor",
				})
			default:
				err = fmt.Errorf("MonitorHandler.UpdateMonitor: %w", err)
				h.logger.LoggingError(c, err, fmt.Sprintf("failed to update monitor %s", id), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewMonitorInfoResponse(updated))
	}
}

func (h *monitorHandler) DeleteMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := h.monitorService.DeleteMonitor(c, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrMonitorNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Monitor not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.DeleteMonitor: %w", err)
			h.logger.LoggingError(c, err, fmt.Sprintf("failed to delete monitor %s", id), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitor deleted",
		})
	}
}

func (h *monitorHandler) StreamStatuses() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.hub.Serve(c.Writer, c.Request)
	}
}

func (h *monitorHandler) ExportMonitorsToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := generateExcelFile(h.monitorService.GetMonitors(c))
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("monitors-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportMonitorsToExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to export monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

const monitorSheetName = "Monitors"

var exportColumns = []interface{}{"id", "name", "url", "method", "frequency", "active", "ignore_global_proxy",
	"proxy_host", "proxy_port", "proxy_username", "status", "latency", "error_message", "last_checked_at"}

func generateExcelFile(monitors []model.Monitor) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(monitorSheetName)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = f.SetSheetRow(monitorSheetName, "A1", &exportColumns); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, m := range monitors {
		var proxyHost, proxyUsername string
		var proxyPort int
		if !m.ProxyConfig.IsEmpty() {
			proxyHost, proxyPort, proxyUsername = m.ProxyConfig.Host, m.ProxyConfig.Port, m.ProxyConfig.Username
		}
		lastCheckedAt := ""
		if m.LastCheckedAt != nil {
			lastCheckedAt = m.LastCheckedAt.Format("2006-01-02 15:04:05")
		}
		rowData := []interface{}{
			m.ID,
			m.Name,
			m.URL,
			m.Method,
			m.Frequency,
			m.Active,
			m.IgnoreGlobalProxy,
			proxyHost,
			proxyPort,
			proxyUsername,
			m.Status,
			m.Latency,
			m.ErrorMessage,
			lastCheckedAt,
		}
		if err = f.SetSheetRow(monitorSheetName, fmt.Sprintf("A%d", i+2), &rowData); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (h *monitorHandler) ImportMonitorsFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validMonitors, invalidMonitors, err := h.extractMonitorsFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("MonitorHandler.ImportMonitorsFromExcelFile: %w", err)
				h.logger.LoggingError(c, err, "failed to import monitors", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		imported, nonImported, err := h.monitorService.ImportMonitors(c, validMonitors)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ImportMonitorsFromExcelFile: %w", err)
			h.logger.LoggingError(c, err, "failed to import monitors", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		var importedNames []string
		for _, m := range imported {
			importedNames = append(importedNames, m.Name)
		}
		for _, m := range nonImported {
			invalidMonitors = append(invalidMonitors, m.Name)
		}
		c.JSON(http.StatusOK, response.ImportMonitorResponse{
			ImportedCount:    len(importedNames),
			ImportedMonitors: importedNames,
			FailedCount:      len(invalidMonitors),
			FailedMonitors:   invalidMonitors,
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (h *monitorHandler) extractMonitorsFromExcelFile(file *multipart.FileHeader, importSheet string) (validMonitors []model.Monitor, invalidMonitors []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	requiredColumns := []string{"name", "url", "method", "frequency"}
	for _, requiredColumn := range requiredColumns {
		if _, ok := columnMap[requiredColumn]; !ok {
			err = errMissingRequiredColumn
			return
		}
	}

	for _, row := range rows[1:] {
		cell := func(column string) string {
			i, ok := columnMap[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		name := cell("name")
		frequency, e := strconv.Atoi(cell("frequency"))
		if e != nil {
			invalidMonitors = append(invalidMonitors, name)
			continue
		}
		active, e := parseBoolCell(cell("active"), true)
		if e != nil {
			invalidMonitors = append(invalidMonitors, name)
			continue
		}
		ignoreGlobalProxy, e := parseBoolCell(cell("ignore_global_proxy"), false)
		if e != nil {
			invalidMonitors = append(invalidMonitors, name)
			continue
		}
		req := request.MonitorRequest{
			Name:              name,
			URL:               cell("url"),
			Method:            normalizeMethod(cell("method")),
			Frequency:         &frequency,
			Active:            &active,
			IgnoreGlobalProxy: ignoreGlobalProxy,
		}
		if host := cell("proxy_host"); host != "" {
			port := 0
			if p := cell("proxy_port"); p != "" {
				if port, e = strconv.Atoi(p); e != nil {
					invalidMonitors = append(invalidMonitors, name)
					continue
				}
			}
			req.ProxyConfig = &request.ProxyConfigRequest{
				Host:     host,
				Port:     port,
				Username: cell("proxy_username"),
				Password: cell("proxy_password"),
			}
		}
		if e = h.validator.Struct(req); e != nil {
			invalidMonitors = append(invalidMonitors, name)
			continue
		}
		validMonitors = append(validMonitors, model.Monitor{
			Name:              req.Name,
			URL:               req.URL,
			Method:            req.Method,
			Frequency:         *req.Frequency,
			Active:            *req.Active,
			IgnoreGlobalProxy: req.IgnoreGlobalProxy,
			ProxyConfig:       toProxyConfig(req.ProxyConfig),
		})
	}
	return
}

func parseBoolCell(value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseBool(strings.ToLower(value))
}

func NewMonitorHandler(logger *zap.Logger, monitorService service.MonitorService, hub publisher.Hub) MonitorHandler {
	return &monitorHandler{
		monitorService: monitorService,
		hub:            hub,
		logger:         NewLogger(logger),
		validator:      validator.New(),
	}
}
