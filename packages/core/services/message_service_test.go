package services

import (
	"errors"
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	calls int
	fail  bool
}

func (n *recordingNotifier) SendContactNotification(name, email, message string) error {
	n.calls++
	if n.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func TestCreateMessage(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewMessageService(setupTestDB(t), notifier)

	message, err := svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan Gupta",
		Email:   "rohan@example.com",
		Message: "Do you host private events?",
	})
	require.NoError(t, err)

	assert.NotZero(t, message.ID)
	assert.False(t, message.IsRead)
	assert.Equal(t, 1, notifier.calls)
}

func TestCreateMessage_NotifierFailureDoesNotLoseMessage(t *testing.T) {
	notifier := &recordingNotifier{fail: true}
	svc := NewMessageService(setupTestDB(t), notifier)

	_, err := svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan Gupta",
		Email:   "rohan@example.com",
		Message: "Do you host private events?",
	})
	require.NoError(t, err)

	messages, err := svc.ListMessages(false)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestCreateMessage_Validation(t *testing.T) {
	svc := NewMessageService(setupTestDB(t), nil)

	_, err := svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "  ",
		Email:   "rohan@example.com",
		Message: "hi",
	})
	assert.Error(t, err)

	_, err = svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan",
		Email:   "not-an-email",
		Message: "hi",
	})
	assert.Error(t, err)

	_, err = svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan",
		Email:   "rohan@example.com",
		Message: "   ",
	})
	assert.Error(t, err)
}

func TestMarkReadAndUnreadFilter(t *testing.T) {
	svc := NewMessageService(setupTestDB(t), nil)

	first, err := svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan",
		Email:   "rohan@example.com",
		Message: "First",
	})
	require.NoError(t, err)

	_, err = svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Priya",
		Email:   "priya@example.com",
		Message: "Second",
	})
	require.NoError(t, err)

	_, err = svc.MarkRead(first.ID, true)
	require.NoError(t, err)

	unread, err := svc.ListMessages(true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Priya", unread[0].Name)

	_, err = svc.MarkRead(999, true)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestDeleteMessage(t *testing.T) {
	svc := NewMessageService(setupTestDB(t), nil)

	message, err := svc.CreateMessage(models.CreateContactMessageRequest{
		Name:    "Rohan",
		Email:   "rohan@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMessage(message.ID))
	assert.ErrorIs(t, svc.DeleteMessage(message.ID), ErrMessageNotFound)
}
