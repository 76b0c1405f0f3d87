package cli_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// testBackend is an in-memory HTTP stand-in for the orders backend. Commands
// are pointed at it through the ORDERDESK_API_URL environment override.
type testBackend struct {
	srv *httptest.Server

	mu          sync.Mutex
	products    map[int]domain.Product
	orders      map[int]domain.Order
	lines       map[int][]domain.OrderItem
	nextOrderID int
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()

	b := &testBackend{
		products:    make(map[int]domain.Product),
		orders:      make(map[int]domain.Order),
		lines:       make(map[int][]domain.OrderItem),
		nextOrderID: 100,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", b.listProducts)
	mux.HandleFunc("GET /api/products/{id}", b.getProduct)
	mux.HandleFunc("GET /api/products/findByOrderId/{id}", b.listOrderLines)
	mux.HandleFunc("POST /api/products", b.createProduct)
	mux.HandleFunc("PUT /api/products/{id}", b.updateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", b.deleteProduct)
	mux.HandleFunc("GET /api/orders", b.listOrders)
	mux.HandleFunc("GET /api/orders/{id}", b.getOrder)
	mux.HandleFunc("POST /api/orders", b.createOrder)
	mux.HandleFunc("PUT /api/orders/{id}", b.updateOrder)
	mux.HandleFunc("POST /api/orders/createDetails", b.createOrderLine)
	mux.HandleFunc("PUT /api/orders/updateDetails", b.updateOrderLine)
	mux.HandleFunc("PATCH /api/orders/changeStatus/{id}", b.changeStatus)
	mux.HandleFunc("DELETE /api/orders/{id}", b.deleteOrder)

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	t.Setenv("ORDERDESK_API_URL", b.srv.URL)

	return b
}

func (b *testBackend) seedProduct(p domain.Product) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products[p.ID] = p
}

func (b *testBackend) seedOrder(o domain.Order, lines ...domain.OrderItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[o.ID] = o
	b.lines[o.ID] = lines
}

func (b *testBackend) order(id int) (domain.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[id]
	return o, ok
}

func (b *testBackend) orderLines(id int) []domain.OrderItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]domain.OrderItem(nil), b.lines[id]...)
}

func writeData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

func (b *testBackend) listProducts(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeData(w, out)
}

func (b *testBackend) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	b.mu.Lock()
	p, ok := b.products[id]
	b.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeData(w, p)
}

func (b *testBackend) createProduct(w http.ResponseWriter, r *http.Request) {
	var in domain.ProductInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	b.mu.Lock()
	id := len(b.products) + 1
	for b.products[id].ID != 0 {
		id++
	}
	p := domain.Product{ID: id, Name: in.Name, UnitPrice: in.UnitPrice, ImageURL: in.ImageURL}
	b.products[id] = p
	b.mu.Unlock()
	writeData(w, p)
}

func (b *testBackend) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	var in domain.ProductInput
	_ = json.NewDecoder(r.Body).Decode(&in)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.products[id]; !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	p := domain.Product{ID: id, Name: in.Name, UnitPrice: in.UnitPrice, ImageURL: in.ImageURL}
	b.products[id] = p
	writeData(w, p)
}

func (b *testBackend) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	b.mu.Lock()
	delete(b.products, id)
	b.mu.Unlock()
	writeData(w, nil)
}

func (b *testBackend) listOrderLines(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	b.mu.Lock()
	lines := append([]domain.OrderItem(nil), b.lines[id]...)
	b.mu.Unlock()
	writeData(w, lines)
}

func (b *testBackend) listOrders(w http.ResponseWriter, _ *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Order, 0, len(b.orders))
	for _, o := range b.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeData(w, out)
}

func (b *testBackend) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	b.mu.Lock()
	o, ok := b.orders[id]
	b.mu.Unlock()
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeData(w, o)
}

func (b *testBackend) createOrder(w http.ResponseWriter, r *http.Request) {
	var o domain.Order
	_ = json.NewDecoder(r.Body).Decode(&o)
	b.mu.Lock()
	o.ID = b.nextOrderID
	b.nextOrderID++
	b.orders[o.ID] = o
	b.mu.Unlock()
	writeData(w, o)
}

func (b *testBackend) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	var o domain.Order
	_ = json.NewDecoder(r.Body).Decode(&o)
	o.ID = id
	b.mu.Lock()
	b.orders[id] = o
	b.mu.Unlock()
	writeData(w, o)
}

func (b *testBackend) createOrderLine(w http.ResponseWriter, r *http.Request) {
	var line domain.OrderItem
	_ = json.NewDecoder(r.Body).Decode(&line)
	b.mu.Lock()
	b.lines[line.OrderID] = append(b.lines[line.OrderID], line)
	b.mu.Unlock()
	writeData(w, line)
}

func (b *testBackend) updateOrderLine(w http.ResponseWriter, r *http.Request) {
	var line domain.OrderItem
	_ = json.NewDecoder(r.Body).Decode(&line)
	b.mu.Lock()
	lines := b.lines[line.OrderID]
	replaced := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID {
			lines[i] = line
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, line)
	}
	b.lines[line.OrderID] = lines
	b.mu.Unlock()
	writeData(w, line)
}

func (b *testBackend) changeStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	var body struct {
		Status domain.Status `json:"status"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	o.Status = body.Status
	b.orders[id] = o
	writeData(w, o)
}

func (b *testBackend) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := pathID(r)
	b.mu.Lock()
	delete(b.orders, id)
	delete(b.lines, id)
	b.mu.Unlock()
	writeData(w, nil)
}
