package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/services"
)

type AlertController struct {
	Alerts *services.AlertService
}

func NewAlertController(alerts *services.AlertService) *AlertController {
	return &AlertController{Alerts: alerts}
}

func (ac *AlertController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := ac.Alerts.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

type UpdateAlertInput struct {
	Status string `json:"status" binding:"required"`
}

func (ac *AlertController) UpdateStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	alert, err := ac.Alerts.UpdateStatus(uid, id, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func (ac *AlertController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ac.Alerts.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert removed"})
}
