package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/attila122/hyratryggt/internal/middleware"
	"github.com/attila122/hyratryggt/internal/service"
)

// LeadHandler exposes the unauthenticated quick-register form and the
// listing contact form.
type LeadHandler struct {
	Leads *service.LeadService
}

func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{Leads: leads}
}

type quickRegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	City  string `json:"city"`
	Rent  any    `json:"rent"`
}

// QuickRegister records a lead submission. No account is created.
func (h *LeadHandler) QuickRegister(c *gin.Context) {
	var req quickRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	registration := h.Leads.QuickRegister(req.Name, req.Email, req.City, parseRentValue(req.Rent))

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration received successfully",
		"registration": registration,
	})
}

// GetQuickRegistrations lists captured leads. Any valid token is accepted;
// there is deliberately no role check here, mirroring the original system.
func (h *LeadHandler) GetQuickRegistrations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Leads.Registrations())
}

type contactRequest struct {
	Message string `json:"message" binding:"required"`
}

// Contact records an inquiry about a listing.
func (h *LeadHandler) Contact(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	listingID, err := strconv.Atoi(c.Param("listingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing ID"})
		return
	}

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	if _, err := h.Leads.Contact(listingID, userID, req.Message); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact request sent successfully"})
}

// parseRentValue accepts the rent field as either a JSON number or a numeric
// string; anything else counts as absent.
func parseRentValue(raw any) *int {
	switch v := raw.(type) {
	case float64:
		rent := int(v)
		return &rent
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		rent, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil
		}
		return &rent
	default:
		return nil
	}
}
