package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "wisenkap/internal/errors"
	"wisenkap/internal/models"
	"wisenkap/internal/services"
)

type mockNotificationService struct {
	created []services.NotificationInput
	stored  []models.Notification
	deleted []uint
}

func (m *mockNotificationService) AlertOverdrawn(context.Context, uint, *models.Budget) {}

func (m *mockNotificationService) CreateNotification(_ context.Context, userID uint, in services.NotificationInput) (*models.Notification, error) {
	m.created = append(m.created, in)
	n := models.Notification{
		Base:        models.Base{ID: uint(len(m.created))},
		UserID:      userID,
		Message:     in.Message,
		AlertTime:   in.AlertTime,
		IsActive:    in.IsActive,
		DeviceToken: in.DeviceToken,
	}
	m.stored = append(m.stored, n)
	return &n, nil
}

func (m *mockNotificationService) GetNotifications(context.Context, uint) ([]models.Notification, error) {
	if m.stored == nil {
		return []models.Notification{}, nil
	}
	return m.stored, nil
}

func (m *mockNotificationService) DeleteNotification(_ context.Context, _ uint, id uint) error {
	for _, n := range m.stored {
		if n.ID == id {
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

var _ services.NotificationServicer = (*mockNotificationService)(nil)

func setupNotificationRouter(handler *NotificationHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("", injectUserID(1))
	g.POST("/notifications", handler.CreateNotification)
	g.GET("/notifications", handler.GetNotifications)
	g.DELETE("/notifications/:id", handler.DeleteNotification)
	return r
}

func TestNotificationHandler_Create(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		svc := &mockNotificationService{}
		r := setupNotificationRouter(NewNotificationHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/notifications", `{"message":"log expenses","alert_time":"20:00","device_token":"tok"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(svc.created) != 1 || !svc.created[0].IsActive {
			t.Errorf("expected active preference, got %+v", svc.created)
		}
		n := parseJSON(t, rec)["notification"].(map[string]interface{})
		if n["message"] != "log expenses" || n["device_token"] != "tok" {
			t.Errorf("unexpected notification %v", n)
		}
	})

	t.Run("honours explicit inactive", func(t *testing.T) {
		svc := &mockNotificationService{}
		r := setupNotificationRouter(NewNotificationHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/notifications", `{"message":"weekly","is_active":false}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if svc.created[0].IsActive {
			t.Error("expected inactive preference")
		}
	})

	t.Run("requires a message", func(t *testing.T) {
		r := setupNotificationRouter(NewNotificationHandler(&mockNotificationService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/notifications", `{"alert_time":"20:00"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestNotificationHandler_ListAndDelete(t *testing.T) {
	svc := &mockNotificationService{}
	audit := &mockAuditService{}
	r := setupNotificationRouter(NewNotificationHandler(svc, audit))

	doRequest(r, "POST", "/notifications", `{"message":"one"}`)

	rec := doRequest(r, "GET", "/notifications", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(parseJSON(t, rec)["notifications"].([]interface{})) != 1 {
		t.Fatal("expected one notification")
	}

	rec = doRequest(r, "DELETE", "/notifications/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doRequest(r, "DELETE", "/notifications/42", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "NOTIFICATION_NOT_FOUND")

	want := []string{services.AuditCreateNotification, services.AuditDeleteNotification}
	if len(audit.actions) != len(want) {
		t.Fatalf("expected audits %v, got %v", want, audit.actions)
	}
	for i := range want {
		if audit.actions[i] != want[i] {
			t.Errorf("audit %d: expected %q, got %q", i, want[i], audit.actions[i])
		}
	}
}
