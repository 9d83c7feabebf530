package handler

import (
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

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"propdesk/internal/http/middleware"
	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
	serviceMocks "propdesk/internal/service/mocks"
	"propdesk/internal/validation"
)

type testMocks struct {
	locations   *serviceMocks.MockLocationService
	owners      *serviceMocks.MockOwnerService
	buildings   *serviceMocks.MockBuildingService
	units       *serviceMocks.MockUnitService
	leases      *serviceMocks.MockLeaseService
	payments    *serviceMocks.MockPaymentService
	stock       *serviceMocks.MockStockService
	requests    *serviceMocks.MockServiceRequestService
	attachments *serviceMocks.MockAttachmentService
	settings    *serviceMocks.MockSettingsService
}

func newTestApp(t *testing.T) (*fiber.App, testMocks) {
	t.Helper()
	m := testMocks{
		locations:   new(serviceMocks.MockLocationService),
		owners:      new(serviceMocks.MockOwnerService),
		buildings:   new(serviceMocks.MockBuildingService),
		units:       new(serviceMocks.MockUnitService),
		leases:      new(serviceMocks.MockLeaseService),
		payments:    new(serviceMocks.MockPaymentService),
		stock:       new(serviceMocks.MockStockService),
		requests:    new(serviceMocks.MockServiceRequestService),
		attachments: new(serviceMocks.MockAttachmentService),
		settings:    new(serviceMocks.MockSettingsService),
	}
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, nil, Services{
		Locations:       m.locations,
		Owners:          m.owners,
		Buildings:       m.buildings,
		Units:           m.units,
		Leases:          m.leases,
		Payments:        m.payments,
		Stock:           m.stock,
		ServiceRequests: m.requests,
		Attachments:     m.attachments,
		Settings:        m.settings,
	})
	return app, m
}

func jsonRequest(method, target string, v any) *http.Request {
	b, _ := json.Marshal(v)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var res errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return res
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListOwners(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		expected := &service.ListResult[model.Owner]{
			Items: []model.Owner{{ID: uuid.NewString(), FullName: "Jane Roe"}},
			Total: 1,
		}
		m.owners.On("List", mock.Anything, repository.OwnerFilter{Query: "jane"}, service.Page{Limit: 10, Offset: 0}).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/owners?limit=10&offset=0&q=jane", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]any
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result["data"], 1)
		assert.Equal(t, float64(1), result["total"])
		m.owners.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/owners?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		m.owners.On("List", mock.Anything, repository.OwnerFilter{}, service.Page{Limit: 10}).
			Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/owners", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", res.Error.Code)
		assert.Equal(t, "internal server error", res.Error.Message)
		assert.NotEmpty(t, res.RequestID)
	})
}

func TestListUnits_Filters(t *testing.T) {
	app, m := newTestApp(t)
	buildingID := uuid.NewString()

	t.Run("filters passed through", func(t *testing.T) {
		m.units.On("List", mock.Anything, repository.UnitFilter{BuildingID: buildingID, Status: "vacant"}, service.Page{Limit: 25, Offset: 50}).
			Return(&service.ListResult[model.Unit]{Items: []model.Unit{}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/units?building_id="+buildingID+"&status=vacant&limit=25&offset=50", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		m.units.AssertExpectations(t)
	})

	t.Run("malformed id filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/units?city_id=nope", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "INVALID_QUERY", res.Error.Code)
		assert.Equal(t, "invalid city_id", res.Error.Message)
	})
}

func TestCreateBuilding(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		created := &model.Building{ID: uuid.NewString(), Name: "Marina Heights"}
		m.buildings.On("Create", mock.Anything, mock.MatchedBy(func(b *model.Building) bool {
			return b.Name == "Marina Heights" && len(b.Owners) == 2
		})).Return(created, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/buildings", map[string]any{
			"name": "Marina Heights",
			"owners": []map[string]any{
				{"owner_id": uuid.NewString(), "percentage": 60},
				{"owner_id": uuid.NewString(), "percentage": 40},
			},
		}))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Building
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, created.ID, result.ID)
		m.buildings.AssertExpectations(t)
	})

	t.Run("ownership does not total 100", func(t *testing.T) {
		errs := validation.Errors{{
			Field:   "owners",
			Code:    "ownership_total",
			Message: "ownership percentages must total 100%, got 80%",
		}}
		m.buildings.On("Create", mock.Anything, mock.Anything).Return(nil, errs).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/buildings", map[string]any{"name": "Tower"}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
		require.Len(t, res.Error.Details, 1)
		assert.Equal(t, "owners", res.Error.Details[0].Field)
		assert.Equal(t, "ownership percentages must total 100%, got 80%", res.Error.Details[0].Message)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/buildings", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})
}

func TestGetUnit(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		m.units.On("Get", mock.Anything, id).Return(&model.Unit{ID: id, UnitNumber: "1204"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/units/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Unit
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "1204", result.UnitNumber)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.NewString()
		m.units.On("Get", mock.Anything, id).Return(nil, fmt.Errorf("unit %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/units/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		res := decodeError(t, resp)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		assert.Equal(t, "unit not found", res.Error.Message)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/units/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestDeleteOwner(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		id := uuid.NewString()
		m.owners.On("Delete", mock.Anything, id).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/owners/"+id, nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("still referenced", func(t *testing.T) {
		id := uuid.NewString()
		m.owners.On("Delete", mock.Anything, id).
			Return(fmt.Errorf("%w: owner is still referenced by other records", service.ErrConflict)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/owners/"+id, nil))

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", decodeError(t, resp).Error.Code)
	})
}

func TestCityDistricts(t *testing.T) {
	app, m := newTestApp(t)
	cityID := uuid.NewString()
	m.locations.On("DistrictsByCity", mock.Anything, cityID).
		Return([]model.District{{ID: uuid.NewString(), CityID: cityID, Name: "Marina"}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/cities/"+cityID+"/districts", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Data []model.District `json:"data"`
	}
	json.NewDecoder(resp.Body).Decode(&result)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "Marina", result.Data[0].Name)
}

func TestCreateDistrict_UsesLocationService(t *testing.T) {
	app, m := newTestApp(t)
	m.locations.On("CreateDistrict", mock.Anything, mock.MatchedBy(func(d *model.District) bool {
		return d.Name == "Marina"
	})).Return(&model.District{ID: uuid.NewString(), Name: "Marina"}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/districts", map[string]string{"name": "Marina"}))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	m.locations.AssertExpectations(t)
}

func TestLookupTenant(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("autofill", func(t *testing.T) {
		m.leases.On("LookupTenant", mock.Anything, "sam").Return([]model.TenantAutofill{{
			TenantName: "Sam Lee", UnitID: uuid.NewString(), UnitNumber: "1204", BuildingName: "Marina Heights",
		}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/leases/lookup?tenant=sam", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result struct {
			Data []model.TenantAutofill `json:"data"`
		}
		json.NewDecoder(resp.Body).Decode(&result)
		require.Len(t, result.Data, 1)
		assert.Equal(t, "Marina Heights", result.Data[0].BuildingName)
	})

	t.Run("query too short", func(t *testing.T) {
		errs := validation.Errors{{Field: "tenant", Code: "validation_min", Message: "must be at least 2 characters"}}
		m.leases.On("LookupTenant", mock.Anything, "s").Return(nil, errs).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/leases/lookup?tenant=s", nil))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestTerminateLease(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()
	m.leases.On("Terminate", mock.Anything, id).
		Return(nil, fmt.Errorf("%w: lease is expired", service.ErrInvalidTransition)).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/leases/"+id+"/terminate", nil))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decodeError(t, resp).Error.Code)
}

func TestLeaseView(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()
	m.leases.On("View", mock.Anything, id).Return(&service.LeaseView{
		Lease:           model.Lease{ID: id},
		DisplayStatus:   "upcoming",
		StatusColor:     "yellow",
		MonthlyRentText: "AED 12,500.00",
	}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/leases/"+id+"/view", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result map[string]any
	json.NewDecoder(resp.Body).Decode(&result)
	assert.Equal(t, "yellow", result["status_color"])
	assert.Equal(t, "AED 12,500.00", result["monthly_rent_text"])
}

func TestListPayments_DateFilter(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("valid", func(t *testing.T) {
		from := model.NewDate(2024, 6, 1)
		m.payments.On("List", mock.Anything, repository.PaymentFilter{Status: "overdue", DueFrom: from}, service.Page{Limit: 10}).
			Return(&service.ListResult[model.Payment]{Items: []model.Payment{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/payments?status=overdue&due_from=2024-06-01", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		m.payments.AssertExpectations(t)
	})

	t.Run("malformed date", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/payments?due_to=01/06/2024", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "invalid due_to", decodeError(t, resp).Error.Message)
	})
}

func TestMarkPaymentPaid(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()
	m.payments.On("MarkPaid", mock.Anything, id, model.PaymentSettlement{
		PaidDate: model.NewDate(2024, 6, 15),
		Method:   model.PaymentMethodBankTransfer,
	}).Return(&model.Payment{ID: id, Status: model.PaymentStatusPaid}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/payments/"+id+"/pay", map[string]string{
		"paid_date": "2024-06-15",
		"method":    "bank_transfer",
	}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.payments.AssertExpectations(t)
}

func TestAdjustStock(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()
	m.stock.On("Adjust", mock.Anything, id, model.StockAdjustment{Delta: -10, Reason: "repair"}).
		Return(nil, fmt.Errorf("%w: cannot remove 10", service.ErrInsufficientStock)).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/stock/"+id+"/adjust", map[string]any{"delta": -10, "reason": "repair"}))

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Error.Code)
}

func TestListStock_LowStock(t *testing.T) {
	app, m := newTestApp(t)

	m.stock.On("List", mock.Anything, repository.StockFilter{LowStock: true}, service.Page{Limit: 10}).
		Return(&service.ListResult[model.StockItem]{Items: []model.StockItem{}}, nil).Once()
	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/stock?low_stock=true", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/stock?low_stock=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChangeRequestStatus(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()
	m.requests.On("ChangeStatus", mock.Anything, id, model.RequestStatusCompleted).
		Return(&model.ServiceRequest{ID: id, Status: model.RequestStatusCompleted}, nil).Once()

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/service-requests/"+id+"/status", map[string]string{"status": "completed"}))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.requests.AssertExpectations(t)
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadAttachment(t *testing.T) {
	app, m := newTestApp(t)
	unitID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(t, "lease.pdf", "hello world")
		expected := &model.Attachment{ID: uuid.NewString(), Filename: "lease.pdf"}
		m.attachments.On("Upload", mock.Anything, model.AttachmentUnit, unitID, mock.Anything, "lease.pdf", mock.Anything, int64(11)).
			Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/units/"+unitID+"/attachments", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var result model.Attachment
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		m.attachments.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/units/"+unitID+"/attachments", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		body, ct := multipartBody(t, "photo.jpg", "img")
		m.attachments.On("Upload", mock.Anything, model.AttachmentServiceRequest, unitID, mock.Anything, "photo.jpg", mock.Anything, int64(3)).
			Return(nil, service.ErrStorageDisabled).Once()

		req := httptest.NewRequest(http.MethodPost, "/service-requests/"+unitID+"/attachments", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_DISABLED", decodeError(t, resp).Error.Code)
	})
}

func TestAttachmentReads(t *testing.T) {
	app, m := newTestApp(t)
	id := uuid.NewString()

	t.Run("metadata with presigned url", func(t *testing.T) {
		m.attachments.On("Get", mock.Anything, id).Return(&model.AttachmentLink{
			Attachment: model.Attachment{ID: id, Filename: "lease.pdf"},
			URL:        "http://minio/presigned",
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/attachments/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.AttachmentLink
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "http://minio/presigned", result.URL)
	})

	t.Run("content", func(t *testing.T) {
		m.attachments.On("Open", mock.Anything, id).Return(
			io.NopCloser(strings.NewReader("pdf-bytes")),
			&model.Attachment{ID: id, Filename: "lease.pdf", ContentType: "application/pdf", Size: 9},
			nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/attachments/"+id+"/content", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="lease.pdf"`, resp.Header.Get("Content-Disposition"))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "pdf-bytes", string(b))
	})

	t.Run("delete not found", func(t *testing.T) {
		m.attachments.On("Delete", mock.Anything, id).Return(fmt.Errorf("attachment %w", service.ErrNotFound)).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/attachments/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestSettings(t *testing.T) {
	app, m := newTestApp(t)

	t.Run("get", func(t *testing.T) {
		def := model.DefaultSettings()
		m.settings.On("Get", mock.Anything).Return(&def, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/settings", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Settings
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "USD", result.Currency)
	})

	t.Run("update invalid", func(t *testing.T) {
		errs := validation.Errors{{Field: "currency", Code: "validation_iso4217", Message: "must be an ISO 4217 currency code"}}
		m.settings.On("Update", mock.Anything, mock.Anything).Return(nil, errs).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/settings", map[string]string{"currency": "XYZ"}))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "currency", decodeError(t, resp).Error.Details[0].Field)
	})
}

func TestRouting(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		// Health endpoint only allows GET
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})
}
