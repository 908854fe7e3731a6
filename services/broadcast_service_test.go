package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

func TestBroadcastNoContacts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	result, err := svc.Broadcast(user.ID, "12.9,77.6", "call now")

	assert.ErrorIs(t, err, apperrors.ErrNoContacts)
	assert.Nil(t, result)
	assert.Equal(t, 0, sender.sentCount())
}

func TestBroadcastUserNotFound(t *testing.T) {
	db := newTestDB(t)
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	_, err := svc.Broadcast(999, "12.9,77.6", "call now")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, sender.sentCount())
}

func TestBroadcastAllSucceed(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane", "+15550001", "+15550002", "+15550003")
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	result, err := svc.Broadcast(user.ID, "12.9,77.6", "call now")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.Details, 3)
	assert.Equal(t, 3, sender.sentCount())
}

func TestBroadcastPartialFailure(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane", "+15550001", "+15550002")
	sender := &stubSender{failTo: map[string]bool{"+15550002": true}}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	result, err := svc.Broadcast(user.ID, "12.9,77.6", "call now")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)

	var failed []ContactOutcome
	for _, d := range result.Details {
		if d.Status == "failed" {
			failed = append(failed, d)
		}
	}
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Error, "forced failure")

	// the delivered message carries the user's name and a maps link
	bodies := sender.sentBodies()
	require.Len(t, bodies, 1)
	assert.LessOrEqual(t, len(bodies[0]), 160)
	assert.Contains(t, bodies[0], "Jane")
	assert.Contains(t, bodies[0], "https://maps.google.com/?q=12.9,77.6")
}

func TestBroadcastIdenticalBodyPerContact(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane", "+15550001", "+15550002", "+15550003")
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	_, err := svc.Broadcast(user.ID, "MG Road", "call now")
	require.NoError(t, err)

	bodies := sender.sentBodies()
	require.Len(t, bodies, 3)
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[0], bodies[2])
}

func TestBroadcastDefaultMessage(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane", "+15550001")
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	_, err := svc.Broadcast(user.ID, "MG Road", "")
	require.NoError(t, err)

	bodies := sender.sentBodies()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "I need immediate help!")
}

func TestBroadcastToOne(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane", "+15550001")
	var contact models.Contact
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&contact).Error)

	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	got, err := svc.BroadcastToOne(user.ID, contact.ID, "")
	require.NoError(t, err)
	assert.Equal(t, contact.ID, got.ID)

	bodies := sender.sentBodies()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "This is a test message from SheShield")
	assert.Contains(t, bodies[0], "Location unavailable")
}

func TestBroadcastToOneNotOwned(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Jane", "+15550001")
	intruder := seedUser(t, db, "Mallory")

	var contact models.Contact
	require.NoError(t, db.Where("user_id = ?", owner.ID).First(&contact).Error)

	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	_, err := svc.BroadcastToOne(intruder.ID, contact.ID, "hello")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Equal(t, 0, sender.sentCount())
}

func TestBroadcastToOneNotFound(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	sender := &stubSender{}
	svc := NewBroadcastService(db, sender, zaptest.NewLogger(t))

	_, err := svc.BroadcastToOne(user.ID, 12345, "hello")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, sender.sentCount())
}
