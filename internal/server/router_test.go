package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"wisenkap/internal/logger"
	"wisenkap/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

func newTestRouter() *gin.Engine {
	return NewRouter(Services{}, Options{
		Tokens:      middleware.NewTokenManager("router-test-secret", time.Minute, time.Hour),
		AdminAPIKey: "router-test-key",
	})
}

type openAPIDoc struct {
	BasePath    string                                 `json:"basePath"`
	Paths       map[string]map[string]openAPIOperation `json:"paths"`
	Definitions map[string]json.RawMessage             `json:"definitions"`
	Parameters  map[string]json.RawMessage             `json:"parameters"`
}

type openAPIOperation struct {
	Responses map[string]struct {
		Schema json.RawMessage `json:"schema"`
	} `json:"responses"`
}

// readDoc returns the registered document and the $ref targets it uses.
func readDoc(t *testing.T) (openAPIDoc, []string) {
	t.Helper()
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("failed to read OpenAPI document: %v", err)
	}
	var doc openAPIDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("OpenAPI document is not valid JSON: %v", err)
	}
	var tree interface{}
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		t.Fatalf("OpenAPI document is not valid JSON: %v", err)
	}
	return doc, collectRefs(tree, nil)
}

func collectRefs(node interface{}, refs []string) []string {
	switch v := node.(type) {
	case map[string]interface{}:
		for key, child := range v {
			if ref, ok := child.(string); ok && key == "$ref" {
				refs = append(refs, ref)
				continue
			}
			refs = collectRefs(child, refs)
		}
	case []interface{}:
		for _, child := range v {
			refs = collectRefs(child, refs)
		}
	}
	return refs
}

func TestOpenAPIDocCoversRoutes(t *testing.T) {
	doc, refs := readDoc(t)
	if doc.BasePath != "/api/v1" {
		t.Fatalf("expected base path /api/v1, got %q", doc.BasePath)
	}

	for _, route := range newTestRouter().Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath+"/") {
			continue
		}
		path := strings.TrimPrefix(route.Path, doc.BasePath)
		path = strings.ReplaceAll(path, ":id", "{id}")
		method := strings.ToLower(route.Method)

		t.Run(route.Method+" "+path, func(t *testing.T) {
			op, ok := doc.Paths[path][method]
			if !ok {
				t.Fatalf("route %s %s is not documented", route.Method, route.Path)
			}
			var documented bool
			for code, resp := range op.Responses {
				if !strings.HasPrefix(code, "2") {
					continue
				}
				documented = true
				if len(resp.Schema) == 0 {
					t.Errorf("response %s has no schema", code)
				}
			}
			if !documented {
				t.Error("no success response documented")
			}
		})
	}

	t.Run("references_resolve", func(t *testing.T) {
		if len(refs) == 0 {
			t.Fatal("expected the document to use references")
		}
		for _, ref := range refs {
			switch {
			case strings.HasPrefix(ref, "#/definitions/"):
				if _, ok := doc.Definitions[strings.TrimPrefix(ref, "#/definitions/")]; !ok {
					t.Errorf("dangling reference %s", ref)
				}
			case strings.HasPrefix(ref, "#/parameters/"):
				if _, ok := doc.Parameters[strings.TrimPrefix(ref, "#/parameters/")]; !ok {
					t.Errorf("dangling reference %s", ref)
				}
			default:
				t.Errorf("unexpected reference %s", ref)
			}
		}
	})
}

func TestHealthAndNoRoute(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("expected healthy response, got %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
