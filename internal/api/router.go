package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/campuslaf/laf-backend/internal/api/recovery"
	"github.com/campuslaf/laf-backend/internal/auth"
	"github.com/campuslaf/laf-backend/internal/metrics"
	"github.com/campuslaf/laf-backend/internal/services"
	"github.com/campuslaf/laf-backend/internal/store"
)

// NewRouter wires the HTTP surface. Public routes are the submission form
// lookups, lost-report creation, and health; everything else requires a
// verified staff token.
func NewRouter(
	st store.Store,
	items *services.ItemService,
	reports *services.ReportService,
	tax *services.TaxonomyService,
	authorizer auth.Authorizer,
) *mux.Router {
	router := mux.NewRouter()

	router.Use(recovery.Middleware)
	router.Use(RequestID)
	router.Use(Logging)
	router.Use(metrics.Middleware)
	router.Use(Authenticate(authorizer))

	itemHandler := NewItemHandler(items)
	reportHandler := NewReportHandler(reports)
	taxHandler := NewTaxonomyHandler(tax)
	healthHandler := NewHealthHandler(st)

	staff := func(h http.HandlerFunc) http.Handler { return RequireStaff(h) }

	// Public endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/laf/types", taxHandler.Types).Methods("GET")
	router.HandleFunc("/api/laf/locations", taxHandler.Locations).Methods("GET")
	router.HandleFunc("/api/laf/report", reportHandler.CreateReport).Methods("POST")

	// Item endpoints
	router.Handle("/api/laf/item", staff(itemHandler.CreateItem)).Methods("POST")
	router.Handle("/api/laf/items", staff(itemHandler.SearchItems)).Methods("GET")
	router.Handle("/api/laf/items/archive", staff(itemHandler.ArchiveItems)).Methods("POST")
	router.Handle("/api/laf/expired", staff(itemHandler.ExpiredItems)).Methods("GET")
	router.Handle("/api/laf/item/found/{id:[0-9]+}", staff(itemHandler.FoundItem)).Methods("PUT")
	router.Handle("/api/laf/item/{id:[0-9]+}", staff(itemHandler.UpdateItem)).Methods("PUT")

	// Report endpoints
	router.Handle("/api/laf/reports", staff(reportHandler.SearchReports)).Methods("GET")
	router.Handle("/api/laf/reports/new", staff(reportHandler.NewReports)).Methods("GET")
	router.Handle("/api/laf/reports/new/count", staff(reportHandler.NewReportCount)).Methods("GET")
	router.Handle("/api/laf/report/found/{id}", staff(reportHandler.FoundReport)).Methods("PUT")
	router.Handle("/api/laf/report/viewed/{id}", staff(reportHandler.ViewedReport)).Methods("PUT")
	router.Handle("/api/laf/report/{id}", staff(reportHandler.UpdateReport)).Methods("PUT")

	// Taxonomy admin
	router.Handle("/api/laf/type", staff(taxHandler.CreateType)).Methods("POST")
	router.Handle("/api/laf/type", staff(taxHandler.DeleteType)).Methods("DELETE")
	router.Handle("/api/laf/location", staff(taxHandler.CreateLocation)).Methods("POST")
	router.Handle("/api/laf/location", staff(taxHandler.DeleteLocation)).Methods("DELETE")

	// Prometheus scrape endpoint
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	return router
}
