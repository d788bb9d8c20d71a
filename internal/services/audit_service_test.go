package services

import (
	"testing"

	"wisenkap/internal/models"
	"wisenkap/internal/testutil"
)

func TestAuditLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAuditService(db)
	user := testutil.CreateTestUser(t, db)

	svc.Log(user.ID, AuditCreateBudget, "budget", 7, "127.0.0.1", map[string]interface{}{"amount": "1200.00"})
	svc.Log(user.ID, AuditDeleteBudget, "budget", 7, "127.0.0.1", nil)

	var entries []models.AuditLog
	testutil.AssertNoError(t, db.Order("id").Find(&entries).Error)
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Action != AuditCreateBudget || entries[0].Changes != `{"amount":"1200.00"}` {
		t.Errorf("unexpected entry %+v", entries[0])
	}
	if entries[1].Changes != "" {
		t.Errorf("expected no changes recorded, got %q", entries[1].Changes)
	}
}
