package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storeapi/docs"
	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// Repositories bundles the data access the entity routes are served from.
type Repositories struct {
	Stores           repository.StoreRepository
	StoreInspections repository.StoreInspectionRepository
	Products         repository.ProductRepository
	ProductArrivals  repository.ProductArrivalRepository
	Customers        repository.CustomerRepository
	Purchases        repository.PurchaseRepository
}

// Options configures RegisterRoutes.
type Options struct {
	// APIPrefix is prepended to every entity route, e.g. "/store-system".
	APIPrefix string
	// Gatherer backs /metrics. prometheus.DefaultGatherer is used when nil.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, repos Repositories, opts Options) {
	app.Get("/", Welcome())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", Liveness())
	app.Get("/db-check", DBCheck(db))

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	docs.SetAPIPrefix(opts.APIPrefix)
	app.Get("/swagger/*", SwaggerUI())

	api := app.Group(opts.APIPrefix)

	mountEntity[model.Store, model.StoreCreate, model.StoreUpdate](
		api, "/stores", repos.Stores, storeResource, ListStores(repos.Stores))
	mountEntity[model.StoreInspection, model.StoreInspectionCreate, model.StoreInspectionUpdate](
		api, "/store-inspections", repos.StoreInspections, storeInspectionResource, ListStoreInspections(repos.StoreInspections))
	mountEntity[model.Product, model.ProductCreate, model.ProductUpdate](
		api, "/products", repos.Products, productResource, ListProducts(repos.Products))
	mountEntity[model.ProductArrival, model.ProductArrivalCreate, model.ProductArrivalUpdate](
		api, "/product-arrivals", repos.ProductArrivals, productArrivalResource, ListProductArrivals(repos.ProductArrivals))
	mountEntity[model.Customer, model.CustomerCreate, model.CustomerUpdate](
		api, "/customers", repos.Customers, customerResource, ListCustomers(repos.Customers))
	mountEntity[model.Purchase, model.PurchaseCreate, model.PurchaseUpdate](
		api, "/purchases", repos.Purchases, purchaseResource, ListPurchases(repos.Purchases))
}

func mountEntity[T, C, U any](r fiber.Router, prefix string, repo repository.Repository[T, C, U], res Resource, list fiber.Handler) {
	g := r.Group(prefix)
	g.Post("/", CreateRecord(repo, res))
	g.Get("/", list)
	g.Get("/:id", GetRecord(repo, res))
	g.Put("/:id", UpdateRecord(repo, res))
	g.Delete("/:id", DeleteRecord(repo, res))
}

// SwaggerUI serves the API docs with the host and scheme the caller used.
func SwaggerUI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}
