package handler

import (
	"github.com/gofiber/fiber/v2"

	"storeapi/internal/model"
	"storeapi/internal/repository"
)

// listResult writes rows, or the storage error that prevented reading them.
func listResult[T any](c *fiber.Ctx, rows []T, err error, res Resource) error {
	if err != nil {
		logFailure(c, err, "list failed")
		return writeStorageError(c, err, res, false)
	}
	if rows == nil {
		rows = []T{}
	}
	return c.JSON(rows)
}

// ListStores handles GET /stores/ with an optional location filter.
func ListStores(repo repository.StoreRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		location, byLocation := q.raw("location")
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		if byLocation {
			rows, err := repo.ListByLocation(c.UserContext(), location, page)
			return listResult(c, rows, err, storeResource)
		}
		rows, err := repo.GetMulti(c.UserContext(), page)
		return listResult(c, rows, err, storeResource)
	}
}

// ListStoreInspections handles GET /store-inspections/. store_id wins over
// the date range.
func ListStoreInspections(repo repository.StoreInspectionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		storeID := q.id("store_id")
		start, end, byDate := q.dateRange()
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		var (
			rows []model.StoreInspection
			err  error
		)
		switch {
		case storeID != 0:
			rows, err = repo.ListByStore(c.UserContext(), storeID, page)
		case byDate:
			rows, err = repo.ListByDateRange(c.UserContext(), start, end, page)
		default:
			rows, err = repo.GetMulti(c.UserContext(), page)
		}
		return listResult(c, rows, err, storeInspectionResource)
	}
}

// ListProducts handles GET /products/. The price filter applies only when
// both bounds are given.
func ListProducts(repo repository.ProductRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		minPrice, hasMin := q.float("min_price")
		maxPrice, hasMax := q.float("max_price")
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		if hasMin && hasMax {
			rows, err := repo.ListByPriceRange(c.UserContext(), minPrice, maxPrice, page)
			return listResult(c, rows, err, productResource)
		}
		rows, err := repo.GetMulti(c.UserContext(), page)
		return listResult(c, rows, err, productResource)
	}
}

// ListProductArrivals handles GET /product-arrivals/.
func ListProductArrivals(repo repository.ProductArrivalRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		productID := q.id("product_id")
		start, end, byDate := q.dateRange()
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		var (
			rows []model.ProductArrival
			err  error
		)
		switch {
		case productID != 0:
			rows, err = repo.ListByProduct(c.UserContext(), productID, page)
		case byDate:
			rows, err = repo.ListByDateRange(c.UserContext(), start, end, page)
		default:
			rows, err = repo.GetMulti(c.UserContext(), page)
		}
		return listResult(c, rows, err, productArrivalResource)
	}
}

// ListCustomers handles GET /customers/. An email filter yields at most one
// customer and ignores paging.
func ListCustomers(repo repository.CustomerRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		email, byEmail := q.raw("email")
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		if byEmail {
			customer, err := repo.GetByEmail(c.UserContext(), email)
			rows := []model.Customer{}
			if customer != nil {
				rows = append(rows, *customer)
			}
			return listResult(c, rows, err, customerResource)
		}
		rows, err := repo.GetMulti(c.UserContext(), page)
		return listResult(c, rows, err, customerResource)
	}
}

// ListPurchases handles GET /purchases/. Filters are tried in the order
// customer_id, product_id, date range.
func ListPurchases(repo repository.PurchaseRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := newQueryReader(c)
		page := q.page()
		customerID := q.id("customer_id")
		productID := q.id("product_id")
		start, end, byDate := q.dateRange()
		if q.details != nil {
			return writeValidationError(c, q.details)
		}

		var (
			rows []model.Purchase
			err  error
		)
		switch {
		case customerID != 0:
			rows, err = repo.ListByCustomer(c.UserContext(), customerID, page)
		case productID != 0:
			rows, err = repo.ListByProduct(c.UserContext(), productID, page)
		case byDate:
			rows, err = repo.ListByDateRange(c.UserContext(), start, end, page)
		default:
			rows, err = repo.GetMulti(c.UserContext(), page)
		}
		return listResult(c, rows, err, purchaseResource)
	}
}
