package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"budgetbuddy/internal/services"
	"budgetbuddy/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := storage.NewStore(storage.NewMemory())
	return NewServer("127.0.0.1:0",
		services.NewIncomeService(store, nil),
		services.NewExpenseService(store, nil),
		services.NewBudgetService(store, nil),
		services.NewDashboardService(store),
		store.Ping)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %v", body["status"])
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCreateIncome(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/income",
		`{"label":"Salary","amount":2500.00,"date":"2024-03-01","isRecurring":true,"frequency":"monthly"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created income: %v", err)
	}
	if created["id"] == "" || created["id"] == nil {
		t.Error("expected generated id")
	}
	if created["amount"] != 2500.00 {
		t.Errorf("expected amount 2500.00, got %v", created["amount"])
	}

	rec = doJSON(t, s, http.MethodGet, "/api/income", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal income list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 income entry, got %d", len(list))
	}
}

func TestCreateIncomeValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"invalid amount", `{"label":"Salary","amount":0,"date":"2024-03-01"}`, http.StatusUnprocessableEntity},
		{"empty label", `{"label":"","amount":100,"date":"2024-03-01"}`, http.StatusUnprocessableEntity},
		{"bad date", `{"label":"Salary","amount":100,"date":"03/01/2024"}`, http.StatusUnprocessableEntity},
		{"bad frequency", `{"label":"Salary","amount":100,"date":"2024-03-01","isRecurring":true,"frequency":"daily"}`, http.StatusUnprocessableEntity},
		{"malformed body", `{"label":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/api/income", tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}

	rec := doJSON(t, s, http.MethodGet, "/api/income", "")
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal income list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("rejected requests must not persist, found %d entries", len(list))
	}
}

func TestExpenseCRUDCycle(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/expenses",
		`{"categoryId":"food","amount":42.50,"description":"Groceries","date":"2024-03-02"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created expense: %v", err)
	}

	rec = doJSON(t, s, http.MethodPut, "/api/expenses/"+created.ID,
		`{"categoryId":"food","amount":45.00,"description":"Groceries and snacks","date":"2024-03-02"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal updated expense: %v", err)
	}
	if updated["amount"] != 45.00 {
		t.Errorf("expected updated amount 45.00, got %v", updated["amount"])
	}

	rec = doJSON(t, s, http.MethodDelete, "/api/expenses/"+created.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/expenses", "")
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal expense list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list after delete, got %d entries", len(list))
	}
}

func TestUpdateMissingExpense(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/expenses/nope",
		`{"categoryId":"food","amount":10,"description":"x","date":"2024-03-02"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteMissingExpenseIsIdempotent(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodDelete, "/api/expenses/nope", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestListBudgetsSeedsDefaults(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/budgets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var budgets []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &budgets); err != nil {
		t.Fatalf("unmarshal budgets: %v", err)
	}
	if len(budgets) != 10 {
		t.Fatalf("expected 10 seeded categories, got %d", len(budgets))
	}
	if budgets[0]["id"] != "food" {
		t.Errorf("expected first seeded category food, got %v", budgets[0]["id"])
	}
}

func TestCreateBudgetWithZeroLimit(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/budgets",
		`{"name":"Gifts","limit":0,"color":"#FF6B6B"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDashboardSummary(t *testing.T) {
	s := newTestServer(t)

	if rec := doJSON(t, s, http.MethodPost, "/api/income",
		`{"label":"Salary","amount":1000,"date":"2024-03-01"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed income: got %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodPost, "/api/budgets",
		`{"name":"Food","limit":300,"color":"#FF6B6B"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed budget: got %d", rec.Code)
	}
	var budget struct {
		ID string `json:"id"`
	}
	rec := doJSON(t, s, http.MethodGet, "/api/budgets", "")
	var budgets []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &budgets); err != nil {
		t.Fatalf("unmarshal budgets: %v", err)
	}
	for _, b := range budgets {
		if b.Name == "Food" {
			budget.ID = b.ID
		}
	}
	if budget.ID == "" {
		t.Fatal("seeded budget not found in list")
	}
	if rec := doJSON(t, s, http.MethodPost, "/api/expenses",
		`{"categoryId":"`+budget.ID+`","amount":200,"description":"Groceries","date":"2024-03-02"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed expense: got %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodPost, "/api/expenses",
		`{"categoryId":"ghost","amount":50,"description":"Mystery","date":"2024-03-03"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed orphan expense: got %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var summary struct {
		TotalIncome   float64 `json:"totalIncome"`
		TotalSpent    float64 `json:"totalSpent"`
		TotalBudgeted float64 `json:"totalBudgeted"`
		Remaining     float64 `json:"remainingBudget"`
		Categories    []struct {
			Name    string  `json:"name"`
			Spent   float64 `json:"spent"`
			Percent float64 `json:"percent"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if summary.TotalIncome != 1000 {
		t.Errorf("totalIncome = %v, want 1000", summary.TotalIncome)
	}
	// Orphan expense counts toward the total but gets no category bar
	if summary.TotalSpent != 250 {
		t.Errorf("totalSpent = %v, want 250", summary.TotalSpent)
	}
	// Seeding is skipped because a budget already exists
	if len(summary.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(summary.Categories))
	}
	for _, c := range summary.Categories {
		if c.Name == "Food" && c.Spent != 200 {
			t.Errorf("Food spent = %v, want 200", c.Spent)
		}
	}
}

func TestMutationRateLimit(t *testing.T) {
	s := newTestServer(t)

	var last int
	for i := 0; i < 70; i++ {
		rec := doJSON(t, s, http.MethodPost, "/api/income",
			`{"label":"Salary","amount":100,"date":"2024-03-01"}`)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", last)
	}
}

func TestSecurityHeaders(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/income", "")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
}
