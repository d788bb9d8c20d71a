package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"wisenkap/internal/models"
	"wisenkap/internal/pagination"
)

func TestAdminHandler_ListUsers(t *testing.T) {
	var got pagination.PageRequest
	users := &mockUserService{
		listUsersFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
			got = page
			resp := pagination.NewPageResponse([]models.User{{Base: models.Base{ID: 1}, Email: "a@example.com"}}, page.Page, page.PageSize, 1)
			return &resp, nil
		},
	}
	r := gin.New()
	r.GET("/admin/users", NewAdminHandler(users).ListUsers)

	t.Run("passes pagination", func(t *testing.T) {
		rec := doRequest(r, "GET", "/admin/users?page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Page != 2 || got.PageSize != 5 {
			t.Errorf("unexpected page request %+v", got)
		}
		result := parseJSON(t, rec)
		if result["total_items"].(float64) != 1 {
			t.Errorf("expected total 1, got %v", result["total_items"])
		}
	})

	t.Run("rejects oversized page", func(t *testing.T) {
		rec := doRequest(r, "GET", "/admin/users?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
