package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"wisenkap/internal/events"
	"wisenkap/internal/logger"
	"wisenkap/internal/middleware"
	"wisenkap/internal/notify"
	"wisenkap/internal/server"
	"wisenkap/internal/services"
	"wisenkap/internal/testutil"
	"wisenkap/internal/validator"
)

const testAdminKey = "integration-admin-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
	Events *events.Recorder
	Pushes *pushRecorder
}

// pushRecorder captures push notifications instead of delivering them.
type pushRecorder struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (p *pushRecorder) Send(_ context.Context, msg notify.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *pushRecorder) Messages() []notify.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Message(nil), p.messages...)
}

// waitForMessages blocks until n pushes were captured, failing after a second.
func (p *pushRecorder) waitForMessages(t *testing.T, n int) []notify.Message {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for {
		messages := p.Messages()
		if len(messages) >= n {
			return messages
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %d pushes, got %d", n, len(messages))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	recorder := events.NewRecorder(64)
	pushes := &pushRecorder{}

	userService := services.NewUserService(db)
	notificationService := services.NewNotificationService(db, pushes, 2)

	router := server.NewRouter(server.Services{
		Users:         userService,
		Audit:         services.NewAuditService(db),
		Budgets:       services.NewBudgetService(db, recorder),
		Postings:      services.NewPostingService(db, recorder, notificationService),
		Notifications: notificationService,
		Export:        services.NewExportService(db, userService),
	}, server.Options{
		Tokens:      middleware.NewTokenManager("integration-secret", 15*time.Minute, time.Hour),
		AdminAPIKey: testAdminKey,
	})

	return &testApp{DB: db, Router: router, Events: recorder, Pushes: pushes}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user and returns the access token, refresh token, and user ID.
func (app *testApp) signupUser(t *testing.T, email, password string) (accessToken, refreshToken string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["access_token"].(string), result["refresh_token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the access and refresh tokens.
func (app *testApp) loginUser(t *testing.T, email, password string) (accessToken, refreshToken string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	return result["access_token"].(string), result["refresh_token"].(string)
}

// createBudget opens a monthly budget funded by the given revenues JSON array
// and returns its ID.
func (app *testApp) createBudget(t *testing.T, token, name, revenues string) float64 {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"period":"monthly","start_date":"2024-01-01","revenues":%s}`, name, revenues)
	rec := app.request("POST", "/api/v1/budgets", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	return budget["id"].(float64)
}

// budgetAmount fetches the current balance of a budget.
func (app *testApp) budgetAmount(t *testing.T, token string, budgetID float64) string {
	t.Helper()
	rec := app.request("GET", fmt.Sprintf("/api/v1/budgets/%.0f", budgetID), "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("get budget failed: %d %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	return budget["amount"].(string)
}

// adminRequest calls an operator endpoint with the admin API key.
func (app *testApp) adminRequest(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-API-Key", testAdminKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got: %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}
