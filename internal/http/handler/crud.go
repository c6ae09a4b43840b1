package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"storeapi/internal/repository"
)

// CreateRecord handles POST /{entity}/.
func CreateRecord[T, C, U any](repo repository.Repository[T, C, U], res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in C
		if details := decodeBody(c, &in); details != nil {
			return writeValidationError(c, details)
		}
		rec, err := repo.Create(c.UserContext(), in)
		if err != nil {
			logFailure(c, err, "create failed")
			return writeStorageError(c, err, res, false)
		}
		return c.JSON(rec)
	}
}

// GetRecord handles GET /{entity}/:id.
func GetRecord[T, C, U any](repo repository.Repository[T, C, U], res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, details := pathID(c)
		if details != nil {
			return writeValidationError(c, details)
		}
		rec, err := repo.Get(c.UserContext(), id)
		if err != nil {
			logFailure(c, err, "get failed")
			return writeStorageError(c, err, res, false)
		}
		if rec == nil {
			return writeNotFound(c, res)
		}
		return c.JSON(rec)
	}
}

// UpdateRecord handles PUT /{entity}/:id. Only the fields present in the
// body are changed.
func UpdateRecord[T, C, U any](repo repository.Repository[T, C, U], res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, details := pathID(c)
		if details != nil {
			return writeValidationError(c, details)
		}
		var in U
		if details := decodeBody(c, &in); details != nil {
			return writeValidationError(c, details)
		}

		existing, err := repo.Get(c.UserContext(), id)
		if err != nil {
			logFailure(c, err, "get failed")
			return writeStorageError(c, err, res, false)
		}
		if existing == nil {
			return writeNotFound(c, res)
		}

		rec, err := repo.Update(c.UserContext(), existing, in)
		if err != nil {
			logFailure(c, err, "update failed")
			return writeStorageError(c, err, res, false)
		}
		return c.JSON(rec)
	}
}

// DeleteRecord handles DELETE /{entity}/:id and responds with the removed record.
func DeleteRecord[T, C, U any](repo repository.Repository[T, C, U], res Resource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, details := pathID(c)
		if details != nil {
			return writeValidationError(c, details)
		}
		rec, err := repo.Delete(c.UserContext(), id)
		if err != nil {
			logFailure(c, err, "delete failed")
			return writeStorageError(c, err, res, true)
		}
		if rec == nil {
			return writeNotFound(c, res)
		}
		return c.JSON(rec)
	}
}

func logFailure(c *fiber.Ctx, err error, msg string) {
	zerolog.Ctx(c.UserContext()).Warn().
		Err(err).
		Str("path", c.Path()).
		Msg(msg)
}
