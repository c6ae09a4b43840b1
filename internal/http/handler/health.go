package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger is the slice of *sql.DB the health endpoints depend on.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// Welcome answers the root path.
func Welcome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Store System API"})
	}
}

// HealthCheck reports whether the database answers a ping.
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ping(c, db); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, codeUnavailable, msgUnavailable)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// DBCheck is the database connectivity check kept for existing clients.
func DBCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ping(c, db); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, codeUnavailable, "database connection failed")
		}
		return c.JSON(fiber.Map{"message": "Database connection is successful"})
	}
}

// Liveness always answers 200 while the process is serving.
func Liveness() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

func ping(c *fiber.Ctx, db Pinger) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
