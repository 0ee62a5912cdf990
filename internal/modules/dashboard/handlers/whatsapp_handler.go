package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/agentforge/agentforge-be/internal/core/whatsapp"
)

// WhatsAppHandler handles WhatsApp pairing for whatsapp agents
type WhatsAppHandler struct {
	waService *whatsapp.Service
}

// NewWhatsAppHandler creates a new WhatsApp handler
func NewWhatsAppHandler(waService *whatsapp.Service) *WhatsAppHandler {
	return &WhatsAppHandler{waService: waService}
}

// GetQRCode godoc
// @Summary Get WhatsApp pairing QR code
// @Description Returns a PNG QR code to scan from the WhatsApp app
// @Tags WhatsApp
// @Produce png
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /whatsapp/qr [get]
func (h *WhatsAppHandler) GetQRCode(c *fiber.Ctx) error {
	qr, err := h.waService.GenerateQR()
	if err != nil {
		log.Printf("❌ QR generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate QR code",
		})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qr)
}

// SendTestRequest is the body for the test-message endpoint
type SendTestRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SendTestMessage godoc
// @Summary Send a test message
// @Description Send a message through the paired WhatsApp session to verify it works
// @Tags WhatsApp
// @Accept json
// @Produce json
// @Param request body SendTestRequest true "Recipient and message"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /whatsapp/test [post]
func (h *WhatsAppHandler) SendTestMessage(c *fiber.Ctx) error {
	var req SendTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Phone == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "phone and message are required",
		})
	}

	if !h.waService.IsConnected() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "WhatsApp session not connected, scan the QR code first",
		})
	}

	if err := h.waService.SendMessage(req.Phone, req.Message); err != nil {
		log.Printf("❌ Test message failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to send message",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Test message sent",
	})
}

// GetStatus godoc
// @Summary Get WhatsApp session status
// @Tags WhatsApp
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /whatsapp/status [get]
func (h *WhatsAppHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "success",
		"provider":  h.waService.GetProviderName(),
		"connected": h.waService.IsConnected(),
	})
}
