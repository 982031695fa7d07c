package handler

import (
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/request"
	"VCS_Uptime_Monitor/internal/monitor-service/api/dto/response"
	apperrors "VCS_Uptime_Monitor/internal/monitor-service/errors"
	mockpublisher "VCS_Uptime_Monitor/internal/monitor-service/mocks/publisher"
	mockservice "VCS_Uptime_Monitor/internal/monitor-service/mocks/service"
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"VCS_Uptime_Monitor/internal/monitor-service/service"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c
}

func jsonBody(body interface{}) io.Reader {
	if bodyStr, ok := body.(string); ok {
		return strings.NewReader(bodyStr)
	}
	b, _ := json.Marshal(body)
	return bytes.NewReader(b)
}

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

func TestMonitorHandler_GetMonitors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mockService := mockservice.NewMockMonitorService(ctrl)
	mockService.EXPECT().GetMonitors(gomock.Any()).Return([]model.Monitor{
		{ID: "m-1", Name: "Google", URL: "https://google.com", Method: model.MethodHTTP, Status: model.StatusOnline,
			ProxyConfig: &model.ProxyConfig{Host: "proxy.local", Port: 3128, Username: "user", Password: "secret"}},
		{ID: "m-2", Name: "Gateway", URL: "10.0.0.1", Method: model.MethodICMP, Status: model.StatusOffline},
	})

	handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))
	w, c := setupTestContext(t, http.MethodGet, "/monitors", nil)
	handler.GetMonitors()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var res []response.MonitorInfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "m-1", res[0].ID)
	assert.Equal(t, "proxy.local", res[0].ProxyConfig.Host)
	assert.Nil(t, res[1].ProxyConfig)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestMonitorHandler_CreateMonitor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	monitorReq := request.MonitorRequest{
		Name:      "Google",
		URL:       "https://google.com",
		Method:    model.MethodHTTP,
		Frequency: intPtr(60000),
	}
	monitorModel := model.Monitor{
		Name:      "Google",
		URL:       "https://google.com",
		Method:    model.MethodHTTP,
		Frequency: 60000,
		Active:    true,
	}
	createdMonitor := monitorModel
	createdMonitor.ID = "uuid-123"
	createdMonitor.Status = model.StatusOffline
	createdMonitor.CreatedAt = time.Now()

	inactiveReq := monitorReq
	inactiveReq.Active = boolPtr(false)
	inactiveReq.ProxyConfig = &request.ProxyConfigRequest{Host: "proxy.local", Port: 3128}
	inactiveModel := monitorModel
	inactiveModel.Active = false
	inactiveModel.ProxyConfig = &model.ProxyConfig{Host: "proxy.local", Port: 3128}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockMonitorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Monitor Created",
			body: monitorReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), monitorModel).Return(createdMonitor, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"uuid-123"`,
		},
		{
			name: "Success Lowercase method",
			body: request.MonitorRequest{Name: "Google", URL: "https://google.com", Method: " http ", Frequency: intPtr(60000)},
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), monitorModel).Return(createdMonitor, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"method":"HTTP"`,
		},
		{
			name: "Success Inactive monitor with own proxy",
			body: inactiveReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), inactiveModel).Return(inactiveModel, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"active":false`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"name": "Google"`,
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name:           "Error Validation Failed (required field)",
			body:           request.MonitorRequest{URL: "https://google.com", Method: model.MethodHTTP, Frequency: intPtr(1000)},
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Name field is required"`,
		},
		{
			name:           "Error Validation Failed (unknown method)",
			body:           request.MonitorRequest{Name: "Google", URL: "https://google.com", Method: "TCP", Frequency: intPtr(1000)},
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Method field must be one of HTTP ICMP"`,
		},
		{
			name:           "Error Validation Failed (frequency)",
			body:           request.MonitorRequest{Name: "Google", URL: "https://google.com", Method: model.MethodHTTP, Frequency: intPtr(0)},
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Frequency field must be greater than or equal to 1"`,
		},
		{
			name: "Error Monitor Already Exists",
			body: monitorReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), monitorModel).Return(model.Monitor{}, apperrors.ErrMonitorAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"message":"Monitor already exists"`,
		},
		{
			name: "Error Invalid Monitor",
			body: monitorReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), monitorModel).Return(model.Monitor{}, fmt.Errorf("%w: malformed url", apperrors.ErrInvalidMonitor))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid monitor"`,
		},
		{
			name: "Error Internal Server Error",
			body: monitorReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().AddMonitor(gomock.Any(), monitorModel).Return(model.Monitor{}, errors.New("unexpected db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockMonitorService(ctrl)
			tc.setupMocks(mockService)

			handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))

			w, c := setupTestContext(t, http.MethodPost, "/monitors", jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.CreateMonitor()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMonitorHandler_UpdateMonitor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	monitorID := "monitor-uuid-123"

	validReq := request.UpdateMonitorRequest{
		Name:      stringPtr("Google Search"),
		Frequency: intPtr(30000),
		Active:    boolPtr(false),
	}
	expectedUpdate := service.MonitorUpdate{
		Name:      stringPtr("Google Search"),
		Frequency: intPtr(30000),
		Active:    boolPtr(false),
	}
	updatedMonitor := model.Monitor{
		ID:        monitorID,
		Name:      "Google Search",
		URL:       "https://google.com",
		Method:    model.MethodHTTP,
		Frequency: 30000,
		Status:    model.StatusInactive,
	}

	testCases := []struct {
		name           string
		body           interface{}
		setupMocks     func(mockService *mockservice.MockMonitorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Monitor Updated",
			body: validReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, expectedUpdate).Return(updatedMonitor, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"Inactive"`,
		},
		{
			name: "Success Clear proxy config",
			body: request.UpdateMonitorRequest{ClearProxyConfig: true},
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, service.MonitorUpdate{ClearProxyConfig: true}).Return(updatedMonitor, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"monitor-uuid-123"`,
		},
		{
			name:           "Error Invalid JSON body",
			body:           `{"name": `,
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid request body"`,
		},
		{
			name: "Success Lowercase method",
			body: request.UpdateMonitorRequest{Method: stringPtr("icmp")},
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, service.MonitorUpdate{Method: stringPtr(model.MethodICMP)}).Return(updatedMonitor, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"monitor-uuid-123"`,
		},
		{
			name:           "Error Validation Failed (method)",
			body:           request.UpdateMonitorRequest{Method: stringPtr("UDP")},
			setupMocks:     func(mockService *mockservice.MockMonitorService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"The Method field must be one of HTTP ICMP"`,
		},
		{
			name: "Error Monitor Not Found",
			body: validReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, expectedUpdate).Return(model.Monitor{}, apperrors.ErrMonitorNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Monitor not found"`,
		},
		{
			name: "Error Invalid Monitor",
			body: validReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, expectedUpdate).Return(model.Monitor{}, apperrors.ErrInvalidMonitor)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"Invalid monitor"`,
		},
		{
			name: "Error Internal Server Error",
			body: validReq,
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().UpdateMonitor(gomock.Any(), monitorID, expectedUpdate).Return(model.Monitor{}, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockMonitorService(ctrl)
			tc.setupMocks(mockService)

			handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))

			w, c := setupTestContext(t, http.MethodPut, "/monitors/"+monitorID, jsonBody(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Params = gin.Params{{Key: "id", Value: monitorID}}

			handler.UpdateMonitor()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMonitorHandler_DeleteMonitor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	monitorID := "monitor-uuid-123"

	testCases := []struct {
		name           string
		setupMocks     func(mockService *mockservice.MockMonitorService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Monitor Deleted",
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().DeleteMonitor(gomock.Any(), monitorID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Monitor deleted"`,
		},
		{
			name: "Error Monitor Not Found",
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().DeleteMonitor(gomock.Any(), monitorID).Return(apperrors.ErrMonitorNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"message":"Monitor not found"`,
		},
		{
			name: "Error Internal Server Error",
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().DeleteMonitor(gomock.Any(), monitorID).Return(errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockMonitorService(ctrl)
			tc.setupMocks(mockService)

			handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))

			w, c := setupTestContext(t, http.MethodDelete, "/monitors/"+monitorID, nil)
			c.Params = gin.Params{{Key: "id", Value: monitorID}}

			handler.DeleteMonitor()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectedBody)
		})
	}
}

func TestMonitorHandler_StreamStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mockHub := mockpublisher.NewMockHub(ctrl)
	mockHub.EXPECT().Serve(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/monitors/ws", r.URL.Path)
		w.WriteHeader(http.StatusSwitchingProtocols)
	})

	handler := NewMonitorHandler(zap.NewNop(), mockservice.NewMockMonitorService(ctrl), mockHub)
	_, c := setupTestContext(t, http.MethodGet, "/monitors/ws", nil)
	handler.StreamStatuses()(c)

	assert.Equal(t, http.StatusSwitchingProtocols, c.Writer.Status())
}

func TestMonitorHandler_ExportMonitorsToExcelFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	checkedAt := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)
	monitors := []model.Monitor{
		{
			ID:            "uuid-1",
			Name:          "Google",
			URL:           "https://google.com",
			Method:        model.MethodHTTP,
			Frequency:     60000,
			Active:        true,
			ProxyConfig:   &model.ProxyConfig{Host: "proxy.local", Port: 3128, Username: "user", Password: "secret"},
			Status:        model.StatusOnline,
			Latency:       120,
			LastCheckedAt: &checkedAt,
		},
		{
			ID:        "uuid-2",
			Name:      "Gateway",
			URL:       "10.0.0.1",
			Method:    model.MethodICMP,
			Frequency: 30000,
			Status:    model.StatusInactive,
		},
	}

	ctrl := gomock.NewController(t)
	mockService := mockservice.NewMockMonitorService(ctrl)
	mockService.EXPECT().GetMonitors(gomock.Any()).Return(monitors)

	handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))
	w, c := setupTestContext(t, http.MethodGet, "/monitors/export", nil)
	handler.ExportMonitorsToExcelFile()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"monitors-")

	f, err := excelize.OpenReader(w.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(monitorSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	expectedHeaders := []string{"id", "name", "url", "method", "frequency", "active", "ignore_global_proxy",
		"proxy_host", "proxy_port", "proxy_username", "status", "latency", "error_message", "last_checked_at"}
	assert.Equal(t, expectedHeaders, rows[0])

	first := rows[1]
	assert.Equal(t, "uuid-1", first[0])
	assert.Equal(t, "https://google.com", first[2])
	assert.Equal(t, "60000", first[4])
	assert.Equal(t, "proxy.local", first[7])
	assert.Equal(t, "3128", first[8])
	assert.Equal(t, "user", first[9])
	assert.Equal(t, model.StatusOnline, first[10])
	assert.Equal(t, "120", first[11])
	assert.Equal(t, "2025-09-08 10:00:00", first[13])
	for _, row := range rows {
		assert.NotContains(t, row, "secret")
	}
	assert.Equal(t, "uuid-2", rows[2][0])
	assert.Equal(t, model.MethodICMP, rows[2][3])
}

func createTestExcelFile(t *testing.T, sheetName string, headers []string, data [][]interface{}) *bytes.Buffer {
	f := excelize.NewFile()
	index, _ := f.NewSheet(sheetName)

	if len(headers) > 0 {
		err := f.SetSheetRow(sheetName, "A1", &headers)
		assert.NoError(t, err)
	}
	for i, rowData := range data {
		err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &rowData)
		assert.NoError(t, err)
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

func createMultipartRequest(t *testing.T, url, fieldName, fileName string, fileContent *bytes.Buffer) *http.Request {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	assert.NoError(t, err)
	_, err = io.Copy(part, fileContent)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestMonitorHandler_ImportMonitorsFromExcelFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	defaultSheet := "Sheet1"
	validHeaders := []string{"name", "url", "method", "frequency"}
	validData := [][]interface{}{
		{"Google", "https://google.com", "http", "60000"},
		{"Gateway", "10.0.0.1", "ICMP", "30000"},
	}
	expectedValidMonitors := []model.Monitor{
		{Name: "Google", URL: "https://google.com", Method: model.MethodHTTP, Frequency: 60000, Active: true},
		{Name: "Gateway", URL: "10.0.0.1", Method: model.MethodICMP, Frequency: 30000, Active: true},
	}

	optionalHeaders := []string{"name", "url", "method", "frequency", "active", "ignore_global_proxy",
		"proxy_host", "proxy_port", "proxy_username", "proxy_password"}

	testCases := []struct {
		name                string
		fileName            string
		sheetQueryParam     string
		excelFileContent    *bytes.Buffer
		setupMocks          func(mockService *mockservice.MockMonitorService)
		expectedStatus      int
		expectedBodyContain string
	}{
		{
			name:             "Success Import all monitors",
			fileName:         "monitors.xlsx",
			excelFileContent: createTestExcelFile(t, defaultSheet, validHeaders, validData),
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().ImportMonitors(gomock.Any(), expectedValidMonitors).Return(expectedValidMonitors, []model.Monitor{}, nil)
			},
			expectedStatus:      http.StatusOK,
			expectedBodyContain: `"imported_count":2`,
		},
		{
			name:            "Success Import with optional columns and named sheet",
			fileName:        "monitors.xlsx",
			sheetQueryParam: "Proxied",
			excelFileContent: createTestExcelFile(t, "Proxied", optionalHeaders, [][]interface{}{
				{"Intranet", "http://intranet.local", "HTTP", "15000", "false", "true", "proxy.local", "3128", "user", "secret"},
			}),
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				expected := []model.Monitor{{
					Name:              "Intranet",
					URL:               "http://intranet.local",
					Method:            model.MethodHTTP,
					Frequency:         15000,
					Active:            false,
					IgnoreGlobalProxy: true,
					ProxyConfig:       &model.ProxyConfig{Host: "proxy.local", Port: 3128, Username: "user", Password: "secret"},
				}}
				mockService.EXPECT().ImportMonitors(gomock.Any(), expected).Return(expected, nil, nil)
			},
			expectedStatus:      http.StatusOK,
			expectedBodyContain: `"imported_count":1,"imported_monitors":["Intranet"],"failed_count":0`,
		},
		{
			name:                "Error No file provided",
			fileName:            "",
			excelFileContent:    bytes.NewBuffer(nil),
			setupMocks:          func(mockService *mockservice.MockMonitorService) {},
			expectedStatus:      http.StatusBadRequest,
			expectedBodyContain: `"message":"Invalid request body"`,
		},
		{
			name:                "Error Wrong file extension",
			fileName:            "monitors.txt",
			excelFileContent:    bytes.NewBufferString("this is a text file"),
			setupMocks:          func(mockService *mockservice.MockMonitorService) {},
			expectedStatus:      http.StatusBadRequest,
			expectedBodyContain: `"message":"File must be excel file"`,
		},
		{
			name:                "Error Empty Excel file (only header)",
			fileName:            "empty.xlsx",
			excelFileContent:    createTestExcelFile(t, defaultSheet, validHeaders, [][]interface{}{}),
			setupMocks:          func(mockService *mockservice.MockMonitorService) {},
			expectedStatus:      http.StatusBadRequest,
			expectedBodyContain: `"message":"File is empty"`,
		},
		{
			name:                "Error Sheet not found",
			fileName:            "monitors.xlsx",
			sheetQueryParam:     "NonExistentSheet",
			excelFileContent:    createTestExcelFile(t, defaultSheet, validHeaders, validData),
			setupMocks:          func(mockService *mockservice.MockMonitorService) {},
			expectedStatus:      http.StatusBadRequest,
			expectedBodyContain: `"message":"Sheet not found"`,
		},
		{
			name:                "Error Missing required column",
			fileName:            "missing_column.xlsx",
			excelFileContent:    createTestExcelFile(t, defaultSheet, []string{"name", "url"}, validData),
			setupMocks:          func(mockService *mockservice.MockMonitorService) {},
			expectedStatus:      http.StatusBadRequest,
			expectedBodyContain: `"message":"Missing required column"`,
		},
		{
			name:     "Partial Success Some rows invalid, some imported",
			fileName: "mixed_data.xlsx",
			excelFileContent: createTestExcelFile(t, defaultSheet, validHeaders, [][]interface{}{
				{"Valid", "https://example.com", "HTTP", "1000"},
				{"BadFrequency", "https://example.com", "HTTP", "often"},
				{"BadMethod", "https://example.com", "TCP", "1000"},
				{"Duplicate", "https://example.org", "HTTP", "1000"},
			}),
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				valid := []model.Monitor{
					{Name: "Valid", URL: "https://example.com", Method: model.MethodHTTP, Frequency: 1000, Active: true},
					{Name: "Duplicate", URL: "https://example.org", Method: model.MethodHTTP, Frequency: 1000, Active: true},
				}
				mockService.EXPECT().ImportMonitors(gomock.Any(), valid).Return(valid[:1], valid[1:], nil)
			},
			expectedStatus:      http.StatusOK,
			expectedBodyContain: `"imported_count":1,"imported_monitors":["Valid"],"failed_count":3,"failed_monitors":["BadFrequency","BadMethod","Duplicate"]`,
		},
		{
			name:             "Error Service Fails",
			fileName:         "monitors.xlsx",
			excelFileContent: createTestExcelFile(t, defaultSheet, validHeaders, validData),
			setupMocks: func(mockService *mockservice.MockMonitorService) {
				mockService.EXPECT().ImportMonitors(gomock.Any(), expectedValidMonitors).Return(nil, nil, errors.New("database transaction failed"))
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedBodyContain: `"message":"Internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := mockservice.NewMockMonitorService(ctrl)
			tc.setupMocks(mockService)

			handler := NewMonitorHandler(zap.NewNop(), mockService, mockpublisher.NewMockHub(ctrl))

			url := "/monitors/import"
			if tc.sheetQueryParam != "" {
				url = url + "?sheet_name=" + tc.sheetQueryParam
			}

			var req *http.Request
			if tc.fileName == "" {
				req, _ = http.NewRequest(http.MethodPost, url, nil)
			} else {
				req = createMultipartRequest(t, url, "file", tc.fileName, tc.excelFileContent)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.ImportMonitorsFromExcelFile()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp response.ImportMonitorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			}
			assert.Contains(t, w.Body.String(), tc.expectedBodyContain)
		})
	}
}
