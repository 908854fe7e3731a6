package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shankerteja/Sheshield-backend/services"
)

type ContactController struct {
	Contacts *services.ContactService
}

func NewContactController(contacts *services.ContactService) *ContactController {
	return &ContactController{Contacts: contacts}
}

func (cc *ContactController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	contacts, err := cc.Contacts.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (cc *ContactController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	contact, err := cc.Contacts.Create(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (cc *ContactController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input services.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	contact, err := cc.Contacts.Update(uid, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (cc *ContactController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := cc.Contacts.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact removed"})
}
