package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"propdesk/internal/model"
	"propdesk/internal/repository"
	"propdesk/internal/service"
)

// Services bundles the use cases the HTTP layer depends on.
type Services struct {
	Locations       service.LocationService
	Owners          service.OwnerService
	Buildings       service.BuildingService
	Units           service.UnitService
	Leases          service.LeaseService
	Payments        service.PaymentService
	Stock           service.StockService
	ServiceRequests service.ServiceRequestService
	Attachments     service.AttachmentService
	Settings        service.SettingsService
}

// attachable maps the URL segment of records that accept files to their entity type.
var attachable = map[string]string{
	"/units":            model.AttachmentUnit,
	"/leases":           model.AttachmentLease,
	"/service-requests": model.AttachmentServiceRequest,
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parsing, service call, response mapping.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/swagger/*", Swagger())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/cities/:id/districts", CityDistricts(svc.Locations))
	resource[model.City, repository.CityFilter](app, "/cities", cities{svc.Locations}, cityFilter)
	resource[model.District, repository.DistrictFilter](app, "/districts", districts{svc.Locations}, districtFilter)

	resource[model.Owner, repository.OwnerFilter](app, "/owners", svc.Owners, ownerFilter)
	resource[model.Building, repository.BuildingFilter](app, "/buildings", svc.Buildings, buildingFilter)
	resource[model.Unit, repository.UnitFilter](app, "/units", svc.Units, unitFilter)

	// Static segments must be registered before /leases/:id.
	app.Get("/leases/lookup", LookupTenant(svc.Leases))
	resource[model.Lease, repository.LeaseFilter](app, "/leases", svc.Leases, leaseFilter)
	app.Post("/leases/:id/terminate", TerminateLease(svc.Leases))
	app.Get("/leases/:id/view", viewHandler(svc.Leases.View))

	resource[model.Payment, repository.PaymentFilter](app, "/payments", svc.Payments, paymentFilter)
	app.Post("/payments/:id/pay", MarkPaymentPaid(svc.Payments))
	app.Get("/payments/:id/view", viewHandler(svc.Payments.View))

	resource[model.StockItem, repository.StockFilter](app, "/stock", svc.Stock, stockFilter)
	app.Post("/stock/:id/adjust", AdjustStock(svc.Stock))
	app.Get("/stock/:id/view", viewHandler(svc.Stock.View))

	resource[model.ServiceRequest, repository.ServiceRequestFilter](app, "/service-requests", svc.ServiceRequests, serviceRequestFilter)
	app.Post("/service-requests/:id/status", ChangeRequestStatus(svc.ServiceRequests))
	app.Get("/service-requests/:id/view", viewHandler(svc.ServiceRequests.View))

	for prefix, entityType := range attachable {
		app.Get(prefix+"/:id/attachments", ListAttachments(svc.Attachments, entityType))
		app.Post(prefix+"/:id/attachments", UploadAttachment(svc.Attachments, entityType))
	}
	app.Get("/attachments/:id", GetAttachment(svc.Attachments))
	app.Get("/attachments/:id/content", DownloadAttachment(svc.Attachments))
	app.Delete("/attachments/:id", DeleteAttachment(svc.Attachments))

	app.Get("/settings", GetSettings(svc.Settings))
	app.Put("/settings", UpdateSettings(svc.Settings))
}
