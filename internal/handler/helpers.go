package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kenshi-webspace/internal/domain"
	"kenshi-webspace/internal/middleware"
)

var validate = validator.New()

// parseBody decodes and validates a JSON request body in one step.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return middleware.BadRequest(err.Error())
	}
	return nil
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return domain.DefaultPagination()
	}
	params.Validate()
	return params
}
