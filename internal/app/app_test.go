package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contract_tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *gin.Engine) {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Driver = config.DriverMemory
	cfg.HTTP.GinMode = gin.TestMode

	a, err := New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(a.Close)
	return a, a.Router()
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApp_SeededDashboard(t *testing.T) {
	_, r := newTestApp(t)

	if w := do(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected ping 200, got %d", w.Code)
	}

	w := do(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Total  int            `json:"total"`
		Counts map[string]int `json:"counts"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Total != 5 || body.Counts["Locked"] != 1 {
		t.Fatalf("unexpected dashboard: %s", w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestApp_ContractLifecycle(t *testing.T) {
	a, r := newTestApp(t)

	create := `{
		"blueprint_id": "blueprint-1",
		"values": {
			"field-1": "Maintenance",
			"field-2": "Acme Corp",
			"field-3": "2025-03-04",
			"field-8": true
		},
		"signatures": {"field-7": "data:image/png;base64,iVBORw0KGgo="}
	}`
	w := do(r, http.MethodPost, "/v1/contracts", create)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID          int    `json:"id"`
		Status      string `json:"status"`
		BlueprintID string `json:"blueprint_id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Status != "Created" || created.BlueprintID != "blueprint-1" {
		t.Fatalf("unexpected contract: %s", w.Body.String())
	}
	if created.ID < 10000 || created.ID > 99999 {
		t.Fatalf("unexpected id %d", created.ID)
	}
	path := fmt.Sprintf("/v1/contracts/%d", created.ID)

	want := []string{"Approved", "Sent", "Signed", "Locked", "Locked"}
	for i, status := range want {
		w := do(r, http.MethodPost, path+"/advance", "")
		if w.Code != http.StatusOK {
			t.Fatalf("advance %d: expected 200, got %d", i, w.Code)
		}
		var got struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Status != status {
			t.Fatalf("advance %d: expected %s, got %s", i, status, got.Status)
		}
	}

	w = do(r, http.MethodGet, path+"/print?format=text", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected print response %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "Acme Corp") {
		t.Fatalf("expected client name in print output:\n%s", w.Body.String())
	}

	if w := do(r, http.MethodDelete, path, ""); w.Code != http.StatusPreconditionRequired {
		t.Fatalf("expected 428, got %d", w.Code)
	}
	if _, ok := a.Contracts.Get(created.ID); !ok {
		t.Fatalf("unconfirmed delete must not remove the contract")
	}
	if w := do(r, http.MethodDelete, path+"?confirm=true", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, path, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestApp_BlueprintEditorRoundTrip(t *testing.T) {
	_, r := newTestApp(t)

	w := do(r, http.MethodPost, "/v1/blueprints", `{"name":"NDA","fields":[{"type":"Text","label":"Party","required":true}]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var bp struct {
		ID        string `json:"id"`
		CreatedAt string `json:"created_at"`
		Fields    []struct {
			ID string `json:"id"`
		} `json:"fields"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &bp)
	if !strings.HasPrefix(bp.ID, "blueprint-") || bp.CreatedAt == "" || len(bp.Fields) != 1 {
		t.Fatalf("unexpected blueprint: %s", w.Body.String())
	}

	w = do(r, http.MethodGet, "/v1/contracts/new?blueprint="+bp.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	update := fmt.Sprintf(`{"name":"Mutual NDA","fields":[{"id":%q,"type":"Text","label":"Party"},{"type":"Checkbox"}]}`, bp.Fields[0].ID)
	w = do(r, http.MethodPut, "/v1/blueprints/"+bp.ID, update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}
	var updated struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		CreatedAt string `json:"created_at"`
		Fields    []any  `json:"fields"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.ID != bp.ID || updated.Name != "Mutual NDA" || updated.CreatedAt != bp.CreatedAt || len(updated.Fields) != 2 {
		t.Fatalf("unexpected update: %s", w.Body.String())
	}
}
