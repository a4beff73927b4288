package services

import (
	"errors"
	"log"
	"strings"

	"core/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// ContactNotifier forwards a contact form submission to the club inbox.
// The auth package's email service satisfies it.
type ContactNotifier interface {
	SendContactNotification(name, email, message string) error
}

type MessageService struct {
	db       *gorm.DB
	notifier ContactNotifier
}

func NewMessageService(db *gorm.DB, notifier ContactNotifier) *MessageService {
	return &MessageService{
		db:       db,
		notifier: notifier,
	}
}

// CreateMessage stores a contact form submission. The inbox notification is
// best effort; a mail failure never loses the message.
func (s *MessageService) CreateMessage(req models.CreateContactMessageRequest) (*models.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		return nil, errors.New("please enter a valid email address")
	}
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, errors.New("message is required")
	}

	message := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: body,
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendContactNotification(name, email, body); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}

	return message, nil
}

// ListMessages returns messages for the admin panel, newest first.
// unreadOnly narrows the list to messages not yet marked read.
func (s *MessageService) ListMessages(unreadOnly bool) ([]models.ContactMessage, error) {
	query := s.db.Model(&models.ContactMessage{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flips the read flag of one message
func (s *MessageService) MarkRead(id uint, read bool) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&message).Update("is_read", read).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *MessageService) DeleteMessage(id uint) error {
	result := s.db.Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
