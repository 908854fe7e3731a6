package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Shankerteja/Sheshield-backend/apperrors"
	"github.com/Shankerteja/Sheshield-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}, &models.Alert{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, phones ...string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: "irrelevant",
		Phone:    "+15550009999",
	}
	require.NoError(t, db.Create(user).Error)

	for i, phone := range phones {
		contact := &models.Contact{
			UserID:       user.ID,
			Name:         fmt.Sprintf("Contact %d", i+1),
			Phone:        phone,
			Relationship: models.DefaultRelationship,
		}
		require.NoError(t, db.Create(contact).Error)
	}
	return user
}

type sentMessage struct {
	To   string
	Body string
}

// stubSender is a concurrency-safe Sender that can be told to fail for
// specific phone numbers.
type stubSender struct {
	mu     sync.Mutex
	sent   []sentMessage
	failTo map[string]bool
}

func (s *stubSender) Send(to, body string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failTo[to] {
		return "", &apperrors.TransportError{Recipient: to, Err: errors.New("forced failure")}
	}
	s.sent = append(s.sent, sentMessage{To: to, Body: body})
	return fmt.Sprintf("SM%d", len(s.sent)), nil
}

func (s *stubSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *stubSender) sentBodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	bodies := make([]string, 0, len(s.sent))
	for _, m := range s.sent {
		bodies = append(bodies, m.Body)
	}
	return bodies
}
