package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/services"
)

type EmergencyController struct {
	Alerts    *services.AlertService
	Broadcast *services.BroadcastService
}

func NewEmergencyController(alerts *services.AlertService, broadcast *services.BroadcastService) *EmergencyController {
	return &EmergencyController{Alerts: alerts, Broadcast: broadcast}
}

type CreateAlertInput struct {
	Location string `json:"location" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// CreateAlert records the alert and fans the emergency SMS out to all
// of the caller's contacts. Recording and sending are independent:
// partial send failure still returns 201 with the per-contact tally.
func (ec *EmergencyController) CreateAlert(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := ec.Alerts.Create(uid, input.Location, input.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create emergency alert",
			"error":   err.Error(),
		})
		return
	}

	result, err := ec.Broadcast.Broadcast(uid, input.Location, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Emergency alert created and sent",
		"details": gin.H{
			"totalContacts": result.Total,
			"successful":    result.Successful,
			"failed":        result.Failed,
		},
	})
}

type AlertContactInput struct {
	Message string `json:"message"`
}

func (ec *EmergencyController) AlertContact(c *gin.Context) {
	uid := c.GetUint("userID")
	contactID, ok := pathID(c, "contactId")
	if !ok {
		return
	}

	// body is optional; an omitted message falls back to the default
	var input AlertContactInput
	_ = c.ShouldBindJSON(&input)

	if _, err := ec.Broadcast.BroadcastToOne(uid, contactID, input.Message); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test message sent successfully"})
}
