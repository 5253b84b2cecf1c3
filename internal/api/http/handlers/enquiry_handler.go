package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driving-records/internal/api/dto"
	"github.com/spec-kit/driving-records/internal/domain"
	"github.com/spec-kit/driving-records/internal/service"
)

// EnquiryHandler exposes enquiry endpoints.
type EnquiryHandler struct {
	enquiries *service.EnquiryService
}

// NewEnquiryHandler constructs handler.
func NewEnquiryHandler(enquiries *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// Create handles POST /enq/add.
func (h *EnquiryHandler) Create(c *fiber.Ctx) error {
	var in domain.EnquiryInput
	if err := parseBody(c, &in, "Invalid enquiry"); err != nil {
		return err
	}
	if _, err := h.enquiries.Create(c.UserContext(), in); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: dto.MessageEnquiryAdded})
}

// List handles GET /enq/all.
func (h *EnquiryHandler) List(c *fiber.Ctx) error {
	items, err := h.enquiries.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Update handles PATCH /enq/:id.
func (h *EnquiryHandler) Update(c *fiber.Ctx) error {
	var in domain.EnquiryInput
	if err := parseBody(c, &in, "Invalid enquiry"); err != nil {
		return err
	}
	enq, err := h.enquiries.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(enq)
}

// Delete handles DELETE /enq/:id.
func (h *EnquiryHandler) Delete(c *fiber.Ctx) error {
	if _, err := h.enquiries.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: dto.MessageEnquiryDeleted})
}
