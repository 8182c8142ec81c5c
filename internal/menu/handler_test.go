package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
)

// stubRepo implements Repository in memory.
type stubRepo struct {
	items  map[int64]*MenuItem
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{items: make(map[int64]*MenuItem)}
}

func (s *stubRepo) List(ctx context.Context) ([]MenuItem, error) {
	out := make([]MenuItem, 0, len(s.items))
	for _, m := range s.items {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *stubRepo) Create(ctx context.Context, m *MenuItem) error {
	s.nextID++
	m.ID = s.nextID
	cp := *m
	s.items[m.ID] = &cp
	return nil
}

func (s *stubRepo) Update(ctx context.Context, id int64, patch UpdateItemRequest) error {
	cur, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	if patch.Name != nil {
		cur.Name = *patch.Name
	}
	if patch.Price != nil {
		cur.Price = *patch.Price
	}
	if patch.Inventory != nil {
		cur.Inventory = *patch.Inventory
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func newRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(repo, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndList_ReturnsSubmittedValuesWithDistinctIDs(t *testing.T) {
	repo := newStubRepo()
	r := newRouter(repo)

	payloads := []string{
		`{"name":"Espresso","price":"2.50","inventory":20}`,
		`{"name":"Latte","price":"3.50","inventory":15}`,
		`{"name":"Tea","price":"2","inventory":25}`,
	}
	for _, p := range payloads {
		if w := doJSON(r, http.MethodPost, "/api/menu", p); w.Code != http.StatusCreated {
			t.Fatalf("create: status=%d body=%s", w.Code, w.Body.String())
		}
	}

	w := doJSON(r, http.MethodGet, "/api/menu", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: status=%d body=%s", w.Code, w.Body.String())
	}
	var got []MenuItem
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, expected 3", len(got))
	}
	seen := map[int64]bool{}
	for _, m := range got {
		if seen[m.ID] {
			t.Fatalf("duplicate id %d", m.ID)
		}
		seen[m.ID] = true
	}
	if got[1].Name != "Latte" || got[1].Price != "3.50" || got[1].Inventory != 15 {
		t.Fatalf("unexpected item: %+v", got[1])
	}
	// price is normalized to two decimal places
	if got[2].Price != "2.00" {
		t.Fatalf("price not normalized: %q", got[2].Price)
	}
}

func TestCreateItem_Validation(t *testing.T) {
	repo := newStubRepo()
	r := newRouter(repo)

	cases := []struct {
		name string
		body string
	}{
		{"empty name", `{"name":"","price":"2.50","inventory":5}`},
		{"negative price", `{"name":"Mocha","price":"-1","inventory":5}`},
		{"malformed price", `{"name":"Mocha","price":"cheap","inventory":5}`},
		{"negative inventory", `{"name":"Mocha","price":"2.50","inventory":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/menu", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
		})
	}

	// nothing rejected above may appear in the list
	items, _ := repo.List(context.Background())
	if len(items) != 0 {
		t.Fatalf("rejected items were persisted: %+v", items)
	}
}

func TestUpdateItem_PartialWithAndWithoutPrice(t *testing.T) {
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &MenuItem{Name: "Latte", Price: "3.50", Inventory: 15})
	r := newRouter(repo)

	// without price: price stays
	{
		w := doJSON(r, http.MethodPut, "/api/menu/1", `{"inventory":9}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		got, _ := repo.GetByID(context.Background(), 1)
		if got.Price != "3.50" || got.Inventory != 9 || got.Name != "Latte" {
			t.Fatalf("partial update not respected: %+v", got)
		}
	}

	// with price
	{
		w := doJSON(r, http.MethodPut, "/api/menu/1", `{"price":"3.8"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
		}
		got, _ := repo.GetByID(context.Background(), 1)
		if got.Price != "3.80" {
			t.Fatalf("price update not applied: %+v", got)
		}
	}

	// no fields
	if w := doJSON(r, http.MethodPut, "/api/menu/1", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty patch, got %d", w.Code)
	}

	// negative inventory
	if w := doJSON(r, http.MethodPut, "/api/menu/1", `{"inventory":-3}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative inventory, got %d", w.Code)
	}

	// unknown id
	if w := doJSON(r, http.MethodPut, "/api/menu/999", `{"inventory":1}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}
}

func TestDeleteItem_OKAndNotFound(t *testing.T) {
	repo := newStubRepo()
	_ = repo.Create(context.Background(), &MenuItem{Name: "Tea", Price: "2.00", Inventory: 25})
	r := newRouter(repo)

	if w := doJSON(r, http.MethodDelete, "/api/menu/1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if w := doJSON(r, http.MethodDelete, "/api/menu/1", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}
