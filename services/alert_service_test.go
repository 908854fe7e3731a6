package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

func TestAlertCreate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	svc := NewAlertService(db)

	alert, err := svc.Create(user.ID, "12.9,77.6", "call now")
	require.NoError(t, err)

	assert.Equal(t, user.ID, alert.UserID)
	assert.Equal(t, models.AlertActive, alert.Status)
}

func TestAlertCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	svc := NewAlertService(db)

	var ve *apperrors.ValidationError

	_, err := svc.Create(user.ID, "", "call now")
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Create(user.ID, "12.9,77.6", "")
	assert.ErrorAs(t, err, &ve)
}

func TestAlertListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")

	now := time.Now()
	for i, msg := range []string{"oldest", "middle", "newest"} {
		alert := &models.Alert{
			UserID:    user.ID,
			Location:  "MG Road",
			Message:   msg,
			Status:    models.AlertActive,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(alert).Error)
	}

	svc := NewAlertService(db)
	alerts, err := svc.List(user.ID)
	require.NoError(t, err)

	require.Len(t, alerts, 3)
	assert.Equal(t, "newest", alerts[0].Message)
	assert.Equal(t, "oldest", alerts[2].Message)
}

func TestAlertUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	svc := NewAlertService(db)

	alert, err := svc.Create(user.ID, "MG Road", "help")
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(user.ID, alert.ID, models.AlertResolved)
	require.NoError(t, err)
	assert.Equal(t, models.AlertResolved, updated.Status)
}

func TestAlertUpdateStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "Jane")
	svc := NewAlertService(db)

	alert, err := svc.Create(user.ID, "MG Road", "help")
	require.NoError(t, err)

	var ve *apperrors.ValidationError
	_, err = svc.UpdateStatus(user.ID, alert.ID, "archived")
	assert.ErrorAs(t, err, &ve)
}

func TestAlertOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "Jane")
	intruder := seedUser(t, db, "Mallory")
	svc := NewAlertService(db)

	alert, err := svc.Create(owner.ID, "MG Road", "help")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(intruder.ID, alert.ID, models.AlertCancelled)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	assert.ErrorIs(t, svc.Delete(intruder.ID, alert.ID), apperrors.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(owner.ID, 12345), apperrors.ErrNotFound)
	require.NoError(t, svc.Delete(owner.ID, alert.ID))
}
