package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/services"
)

const testSMSBody = "This is a test message from SheShield. If you receive this, SMS sending is working correctly!"

type TestController struct {
	Sender services.Sender
}

func NewTestController(sender services.Sender) *TestController {
	return &TestController{Sender: sender}
}

type TestSMSInput struct {
	PhoneNumber string `json:"phoneNumber"`
}

// SendTestSMS pushes a fixed message through the notifier so transport
// configuration can be checked without touching any user data.
func (tc *TestController) SendTestSMS(c *gin.Context) {
	var input TestSMSInput
	if err := c.ShouldBindJSON(&input); err != nil || input.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone number is required"})
		return
	}

	sid, err := tc.Sender.Send(input.PhoneNumber, testSMSBody)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send test SMS",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Test SMS sent successfully",
		"sid":     sid,
	})
}
