package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mrisafe/config"
	apimiddleware "mrisafe/internal/delivery/api/middleware"
	"mrisafe/internal/delivery/api/router"
	"mrisafe/internal/delivery/api/router/handler"
	deliverycontext "mrisafe/internal/delivery/context"
	"mrisafe/internal/domain/entity"
	domainerrors "mrisafe/internal/domain/errors"
	"mrisafe/internal/domain/service"
	"mrisafe/internal/errors"
	"mrisafe/internal/infra/dataservice/fixture"
	"mrisafe/internal/infra/export"
	servicemocks "mrisafe/internal/mocks/service"
	usecasemocks "mrisafe/internal/mocks/usecase"
	"mrisafe/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	catalog  *usecasemocks.MockCatalogUsecase
	waitlist *usecasemocks.MockWaitlistUsecase
	qrCode   *servicemocks.MockQRCodeService
	verifier *servicemocks.MockTokenVerifier
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.DataService = &config.DataServiceConfig{Source: config.SourceFixture}

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := &testServer{
		catalog:  usecasemocks.NewMockCatalogUsecase(t),
		waitlist: usecasemocks.NewMockWaitlistUsecase(t),
		qrCode:   servicemocks.NewMockQRCodeService(t),
		verifier: servicemocks.NewMockTokenVerifier(t),
	}

	params := router.RouterParams{
		DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
			CatalogUC: ts.catalog,
			QRCodeSvc: ts.qrCode,
			Exporter:  export.NewXLSXExporter(),
			Logger:    logger,
		}),
		CatalogHandler:  handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: ts.catalog}),
		WaitlistHandler: handler.NewWaitlistHandler(handler.WaitlistHandlerParams{WaitlistUC: ts.waitlist}),
		SessionHandler:  handler.NewSessionHandler(),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(ts.verifier, logger),
	}
	ts.echo = NewEcho(cfg, logger, params)

	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body io.Reader, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func devicesByID(ids ...int64) []*entity.Device {
	all := fixture.Devices()
	out := make([]*entity.Device, 0, len(ids))
	for _, id := range ids {
		for _, d := range all {
			if d.ID == id {
				out = append(out, d)
			}
		}
	}

	return out
}

func TestServer_HealthAndRequestID(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec, env := ts.do(t, http.MethodGet, "/health", nil, deliverycontext.HeaderXRequestID, "req-123")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestServer_ListDevicesWithFilters(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().
		ListDevices(mock.Anything, mock.MatchedBy(func(f *entity.SearchFilters) bool {
			return f.CategoryID != nil && *f.CategoryID == 2 &&
				f.ManufacturerID == nil &&
				f.SafetyStatus != nil && *f.SafetyStatus == entity.SafetyStatusConditional &&
				f.Query == nil
		})).
		Return(devicesByID(3), nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/devices?categoryId=2&safety=MR%20Conditional", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count   int `json:"count"`
		Devices []struct {
			ID                int64  `json:"id"`
			SafetyStatus      string `json:"safetyStatus"`
			StatusDescription string `json:"statusDescription"`
			DetailPath        string `json:"detailPath"`
			QRCodePath        string `json:"qrCodePath"`
			Manufacturer      *struct {
				Name string `json:"name"`
			} `json:"manufacturer"`
		} `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Devices, 1)
	assert.Equal(t, int64(3), body.Devices[0].ID)
	assert.Equal(t, "MR Conditional", body.Devices[0].SafetyStatus)
	assert.Equal(t, entity.SafetyStatusConditional.Description(), body.Devices[0].StatusDescription)
	assert.Equal(t, "/api/v1/devices/3", body.Devices[0].DetailPath)
	assert.Equal(t, "/api/v1/devices/3/qr", body.Devices[0].QRCodePath)
	require.NotNil(t, body.Devices[0].Manufacturer)
	assert.Equal(t, "Medtronic", body.Devices[0].Manufacturer.Name)
}

func TestServer_ListDevicesRejectsBadFilters(t *testing.T) {
	ts := newTestServer(t, testConfig())

	for _, target := range []string{
		"/api/v1/devices?safety=mr%20safe",
		"/api/v1/devices?categoryId=abc",
		"/api/v1/devices?manufacturerId=-1",
	} {
		rec, env := ts.do(t, http.MethodGet, target, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.NotNil(t, env.Error, target)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code, target)
		assert.NotNil(t, env.Error.Details, target)
	}
}

func TestServer_GetDevice(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().GetDevice(mock.Anything, int64(1)).Return(devicesByID(1)[0], nil)
	ts.qrCode.EXPECT().DeviceURL(int64(1)).Return("https://mrisafe.example/device/1")

	rec, env := ts.do(t, http.MethodGet, "/api/v1/devices/1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Device struct {
			Name string `json:"name"`
		} `json:"device"`
		PublicURL string `json:"publicUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "Neuro Implant X1", body.Device.Name)
	assert.Equal(t, "https://mrisafe.example/device/1", body.PublicURL)
}

func TestServer_GetDeviceErrors(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().
		GetDevice(mock.Anything, int64(999)).
		Return(nil, domainerrors.ErrDeviceNotFound.WithDetails("device 999"))

	rec, env := ts.do(t, http.MethodGet, "/api/v1/devices/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", env.Error.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/devices/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_Search(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().SearchDevices(mock.Anything, "3T only").Return(devicesByID(1, 2), nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/search?q=3T%20only", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "3T only", body.Query)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, `Found 2 results for "3T only"`, body.Summary)
	assert.Empty(t, body.Message)
	assert.Equal(t, "/api/v1/search?q=3T+only", body.SearchPath)
}

func TestServer_SearchWithoutMatches(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().SearchDevices(mock.Anything, "zz&top").Return([]*entity.Device{}, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/search?q=zz%26top", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Zero(t, body.Count)
	assert.NotNil(t, body.Devices)
	assert.Equal(t, `No results found for "zz&top"`, body.Summary)
	assert.Equal(t, `No devices found matching "zz&top". Try different keywords.`, body.Message)
	assert.Equal(t, "/api/v1/search?q=zz%26top", body.SearchPath)
}

func TestServer_SearchDataServiceFailure(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().
		SearchDevices(mock.Anything, "pump").
		Return(nil, domainerrors.NewDataServiceError(errors.New("dial tcp: refused"), "search devices"))

	rec, env := ts.do(t, http.MethodGet, "/api/v1/search?q=pump", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATA_SERVICE_ERROR", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestServer_Suggestions(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec, env := ts.do(t, http.MethodGet, "/api/v1/search/suggestions?q=Pace", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.SuggestionsResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Len(t, body.Suggestions, 4)
	assert.Equal(t, "Pace - Medtronic", body.Suggestions[0])
	assert.Equal(t, []string{"Pacemaker", "Insulin Pump", "Cochlear Implant"}, body.Popular)

	_, env = ts.do(t, http.MethodGet, "/api/v1/search/suggestions?q=P", nil)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Empty(t, body.Suggestions)
}

func TestServer_SafetyStatuses(t *testing.T) {
	ts := newTestServer(t, testConfig())

	rec, env := ts.do(t, http.MethodGet, "/api/v1/safety-statuses", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var links []handler.SafetyLink
	require.NoError(t, json.Unmarshal(env.Data, &links))
	require.Len(t, links, 4)
	assert.Equal(t, entity.SafetyStatusSafe, links[0].Status)
	assert.Equal(t, "/api/v1/devices?safety=MR+Safe", links[0].Path)
}

func TestServer_DeviceQR(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().GetDevice(mock.Anything, int64(4)).Return(devicesByID(4)[0], nil)
	ts.qrCode.EXPECT().GenerateDeviceQR(int64(4)).Return([]byte("\x89PNG"), nil)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/devices/4/qr", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestServer_DeviceQRFailureIsInternal(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().GetDevice(mock.Anything, int64(4)).Return(devicesByID(4)[0], nil)
	ts.qrCode.EXPECT().GenerateDeviceQR(int64(4)).Return(nil, errors.New("encoder exploded"))

	rec, env := ts.do(t, http.MethodGet, "/api/v1/devices/4/qr", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "exploded")
}

func TestServer_ExportDevices(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().
		ListDevices(mock.Anything, mock.MatchedBy(func(f *entity.SearchFilters) bool {
			return f.SafetyStatus != nil && *f.SafetyStatus == entity.SafetyStatusUnsafe
		})).
		Return(devicesByID(4), nil)

	rec, _ := ts.do(t, http.MethodGet, "/api/v1/devices/export?safety=MR%20Unsafe", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.NewXLSXExporter().ContentType(), rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="mri-devices.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

func TestServer_CategoriesManufacturersAndListing(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.catalog.EXPECT().ListCategories(mock.Anything).Return(fixture.Categories(), nil)
	ts.catalog.EXPECT().
		GetManufacturer(mock.Anything, int64(42)).
		Return(nil, domainerrors.ErrManufacturerNotFound.WithDetails("manufacturer 42"))
	ts.catalog.EXPECT().LoadListingPage(mock.Anything).Return(&usecase.ListingPage{
		Devices:       fixture.Devices(),
		Categories:    fixture.Categories(),
		Manufacturers: fixture.Manufacturers(),
	}, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []entity.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Len(t, categories, 4)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/manufacturers/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MANUFACTURER_NOT_FOUND", env.Error.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/listing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.ListingPageResponse
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Devices, 5)
	assert.Len(t, page.Manufacturers, 4)
	assert.Len(t, page.Safety, 4)
}

func TestServer_JoinWaitlist(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.waitlist.EXPECT().
		Join(mock.Anything, "new@example.com", "").
		Return(&usecase.WaitlistResult{Success: true, Message: usecase.WaitlistJoinedMessage}, nil)
	ts.waitlist.EXPECT().
		Join(mock.Anything, "old@example.com", "footer").
		Return(&usecase.WaitlistResult{Success: true, AlreadyJoined: true, Message: usecase.WaitlistAlreadyMessage}, nil)

	rec, env := ts.do(t, http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"email":"new@example.com"}`))
	assert.Equal(t, http.StatusCreated, rec.Code)
	var result usecase.WaitlistResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, usecase.WaitlistJoinedMessage, result.Message)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"email":"old@example.com","source":"footer"}`))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.AlreadyJoined)
}

func TestServer_JoinWaitlistValidation(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.waitlist.EXPECT().
		Join(mock.Anything, "not-an-email", "").
		Return(nil, domainerrors.ErrInvalidEmail.WithDetails("not-an-email"))

	rec, env := ts.do(t, http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"source":"footer"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Message, "email is required")

	rec, _ = ts.do(t, http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"email":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = ts.do(t, http.MethodPost, "/api/v1/waitlist", strings.NewReader(`{"email":"not-an-email"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Please enter a valid email address", env.Error.Message)
}

func TestServer_ProtectedRoutes(t *testing.T) {
	ts := newTestServer(t, testConfig())
	claims := &service.Claims{
		Email:            "admin@example.com",
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}
	ts.verifier.EXPECT().ValidateToken("good").Return(claims, nil)
	ts.verifier.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))
	ts.verifier.EXPECT().ValidateToken("member").Return(&service.Claims{
		Email:            "nurse@example.com",
		Role:             "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"},
	}, nil)
	ts.waitlist.EXPECT().ListEntries(mock.Anything).Return([]*entity.WaitlistEntry{}, nil)

	rec, env := ts.do(t, http.MethodGet, "/api/v1/waitlist", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_TOKEN", env.Error.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/me", nil, echo.HeaderAuthorization, "Token good")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)

	rec, _ = ts.do(t, http.MethodGet, "/api/v1/me", nil, echo.HeaderAuthorization, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/me", nil, echo.HeaderAuthorization, "Bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"user-1","email":"admin@example.com","role":"admin","status":"authenticated"}`, string(env.Data))

	rec, env = ts.do(t, http.MethodGet, "/api/v1/waitlist", nil, echo.HeaderAuthorization, "Bearer member")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, env = ts.do(t, http.MethodGet, "/api/v1/waitlist", nil, echo.HeaderAuthorization, "Bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"entries":[],"count":0}`, string(env.Data))
}

func TestServer_ConfigurationErrorOnEveryRoute(t *testing.T) {
	cfg := testConfig()
	cfg.DataService = &config.DataServiceConfig{Source: config.SourceRemote, BaseURL: "https://example.supabase.co"}
	ts := newTestServer(t, cfg)

	for _, target := range []string{"/health", "/api/v1/devices", "/api/v1/search?q=pump", "/nowhere"} {
		rec, env := ts.do(t, http.MethodGet, target, nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
		require.NotNil(t, env.Error, target)
		assert.Equal(t, "CONFIGURATION_ERROR", env.Error.Code, target)
		assert.Contains(t, env.Error.Message, "not properly configured", target)
		assert.Nil(t, env.Error.Details, target)
	}
}
