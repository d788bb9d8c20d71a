package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"wisenkap/internal/models"
	"wisenkap/internal/notify"
	"wisenkap/internal/testutil"
)

// fakeSender records delivered messages and fails for tokens in failFor.
type fakeSender struct {
	mu      sync.Mutex
	sent    []notify.Message
	failFor map[string]bool
}

func (s *fakeSender) Send(_ context.Context, msg notify.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[msg.Token] {
		return errors.New("unregistered token")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNotificationService(db, &fakeSender{}, 2)
		user := testutil.CreateTestUser(t, db)

		n, err := svc.CreateNotification(ctx, user.ID, NotificationInput{
			Message:     "Log your expenses",
			AlertTime:   "20:00",
			IsActive:    false,
			DeviceToken: "device-a",
		})
		testutil.AssertNoError(t, err)
		if n.ID == 0 || n.UserID != user.ID {
			t.Fatalf("expected stored notification, got %+v", n)
		}

		var stored models.Notification
		testutil.AssertNoError(t, db.First(&stored, n.ID).Error)
		if stored.IsActive {
			t.Error("expected inactive preference to stay inactive")
		}
	})

	t.Run("missing_message", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewNotificationService(db, nil, 2)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateNotification(ctx, user.ID, NotificationInput{Message: " "})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetAndDeleteNotifications(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewNotificationService(db, nil, 2)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	n := testutil.CreateTestNotification(t, db, owner.ID, "device-a")
	testutil.CreateTestNotification(t, db, other.ID, "device-b")

	list, err := svc.GetNotifications(ctx, owner.ID)
	testutil.AssertNoError(t, err)
	if len(list) != 1 || list[0].ID != n.ID {
		t.Fatalf("expected only the owner's notification, got %+v", list)
	}

	err = svc.DeleteNotification(ctx, other.ID, n.ID)
	testutil.AssertAppError(t, err, "NOTIFICATION_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteNotification(ctx, owner.ID, n.ID))

	err = svc.DeleteNotification(ctx, owner.ID, n.ID)
	testutil.AssertAppError(t, err, "NOTIFICATION_NOT_FOUND")
}

func TestAlertOverdrawn(t *testing.T) {
	ctx := context.Background()

	t.Run("sends_to_active_devices", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{failFor: map[string]bool{"stale": true}}
		svc := NewNotificationService(db, sender, 2)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestNotification(t, db, user.ID, "phone")
		testutil.CreateTestNotification(t, db, user.ID, "tablet")
		testutil.CreateTestNotification(t, db, user.ID, "stale")
		testutil.CreateTestNotification(t, db, user.ID, "")
		inactive := testutil.CreateTestNotification(t, db, user.ID, "old-phone")
		testutil.AssertNoError(t, db.Model(inactive).Update("is_active", false).Error)
		testutil.CreateTestNotification(t, db, other.ID, "someone-else")

		budget := testutil.CreateTestBudget(t, db, user.ID, "-15")
		svc.AlertOverdrawn(ctx, user.ID, budget)

		if len(sender.sent) != 2 {
			t.Fatalf("expected 2 deliveries, got %d: %+v", len(sender.sent), sender.sent)
		}
		tokens := map[string]bool{}
		for _, msg := range sender.sent {
			tokens[msg.Token] = true
			if !strings.Contains(msg.Body, "-15.00") || !strings.Contains(msg.Body, budget.Category) {
				t.Errorf("unexpected body %q", msg.Body)
			}
		}
		if !tokens["phone"] || !tokens["tablet"] {
			t.Errorf("expected phone and tablet, got %v", tokens)
		}
	})

	t.Run("posting_triggers_alert", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		sender := &fakeSender{}
		notifications := NewNotificationService(db, sender, 2)
		postings := NewPostingService(db, nil, notifications)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestNotification(t, db, user.ID, "phone")
		budget := testutil.CreateTestBudget(t, db, user.ID, "5")

		_, err := postings.PostSaving(ctx, user.ID, budget.ID, SavingInput{Amount: "7.25"})
		testutil.AssertNoError(t, err)

		if len(sender.sent) != 1 || !strings.Contains(sender.sent[0].Body, "-2.25") {
			t.Errorf("expected one alert with balance -2.25, got %+v", sender.sent)
		}
	})
}
