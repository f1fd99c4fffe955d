package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"discountapi/internal/directory"
	"discountapi/internal/pricing"
	"discountapi/internal/service"
)

// registerRequest is the body for POST /members.
type registerRequest struct {
	DirectoryID int64 `json:"directory_id"`
	Age         int   `json:"age"`
}

// quoteRequest is the optional body for POST /members/:id/quote.
type quoteRequest struct {
	PromoCode string `json:"promo_code"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay minimal and free of business logic.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.MemberService) {
	// Serve OpenAPI spec and a static docs page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", DocsPage())

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/members", ListMembers(svc))
	app.Post("/members", RegisterMember(svc))
	app.Get("/members/:id", GetMember(svc))
	app.Delete("/members/:id", DeleteMember(svc))
	app.Post("/members/:id/quote", QuoteMember(svc))
}

// DocsPage serves a static swagger-ui page rendering /openapi.yaml.
func DocsPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	}
}

// HealthCheck verifies DB connectivity only.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListMembers lists members with limit & offset.
func ListMembers(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "10")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// RegisterMember creates a member from a directory ID and age.
func RegisterMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.DirectoryID <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "directory_id is required")
		}

		m, err := svc.Register(c.UserContext(), req.DirectoryID, req.Age)
		if err != nil {
			switch {
			case errors.Is(err, pricing.ErrNegativeAge):
				return writeError(c, fiber.StatusBadRequest, "INVALID_AGE", "age must not be negative")
			case errors.Is(err, directory.ErrUserNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "directory user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// GetMember returns a member by ID.
func GetMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "member not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(m)
	}
}

// DeleteMember removes a member by ID.
func DeleteMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "member not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// QuoteMember prices a discount for a member, optionally with a promo code.
func QuoteMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req quoteRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}

		q, err := svc.Quote(c.UserContext(), id, req.PromoCode)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "member not found")
			case errors.Is(err, service.ErrInvalidPromo):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PROMO", "promo code is not redeemable")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(q)
	}
}
