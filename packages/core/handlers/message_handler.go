package handlers

import (
	"core/models"
	"core/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MessageHandler struct {
	messageService *services.MessageService
	db             *gorm.DB
}

func NewMessageHandler(db *gorm.DB, notifier services.ContactNotifier) *MessageHandler {
	return &MessageHandler{
		messageService: services.NewMessageService(db, notifier),
		db:             db,
	}
}

// CreateMessage stores a contact form submission
// @Summary Send contact message
// @Description Submit the public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param message body models.CreateContactMessageRequest true "Contact message"
// @Success 201 {object} models.ContactMessage
// @Failure 400 {object} map[string]string
// @Router /contact [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req models.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.CreateMessage(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// GetMessages lists contact messages
// @Summary List contact messages
// @Description List contact messages, newest first (admin only)
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Param unread query bool false "Only unread messages"
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} map[string]string
// @Router /admin/messages [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	messages, err := h.messageService.ListMessages(unreadOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkMessageRead flips a message's read flag
// @Summary Mark message read
// @Description Mark a contact message read or unread (admin only)
// @Tags contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param body body models.MarkMessageReadRequest true "Read flag"
// @Success 200 {object} models.ContactMessage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id}/read [patch]
func (h *MessageHandler) MarkMessageRead(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var req models.MarkMessageReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.MarkRead(uint(id), *req.IsRead)
	if err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, message)
}

// DeleteMessage deletes a contact message
// @Summary Delete message
// @Description Delete a contact message (admin only)
// @Tags contact
// @Security BearerAuth
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	if err := h.messageService.DeleteMessage(uint(id)); err != nil {
		if errors.Is(err, services.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
