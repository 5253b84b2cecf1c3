package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driving-records/internal/api/dto"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/service"
)

// CustomerHandler exposes customer endpoints.
type CustomerHandler struct {
	customers *service.CustomerService
}

// NewCustomerHandler constructs handler.
func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create handles POST /customers/add.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in domain.CustomerInput
	if err := parseBody(c, &in, "Invalid customer"); err != nil {
		return err
	}
	if _, err := h.customers.Create(c.UserContext(), in); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: dto.MessageCustomerAdded})
}

// List handles GET /customers/all.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	items, err := h.customers.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Update handles PATCH /customers/:id.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in domain.CustomerInput
	if err := parseBody(c, &in, "Invalid customer"); err != nil {
		return err
	}
	cust, err := h.customers.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(cust)
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.customers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: dto.MessageCustomerDeleted})
}
