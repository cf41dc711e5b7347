package httpapi

import (
	"net/http"

	"halalpoultry-be/internal/cart"
	"halalpoultry-be/internal/category"
	"halalpoultry-be/internal/contact"
	"halalpoultry-be/internal/metrics"
	"halalpoultry-be/internal/middleware"
	"halalpoultry-be/internal/order"
	"halalpoultry-be/internal/product"
	"halalpoultry-be/internal/user"

	"github.com/gorilla/mux"
)

// Server holds the domain services behind the REST routes.
type Server struct {
	users      user.Service
	categories category.Service
	products   product.Service
	carts      cart.Service
	orders     *order.Service
	contacts   *contact.Service
}

func NewServer(
	users user.Service,
	categories category.Service,
	products product.Service,
	carts cart.Service,
	orders *order.Service,
	contacts *contact.Service,
) *Server {
	return &Server{
		users:      users,
		categories: categories,
		products:   products,
		carts:      carts,
		orders:     orders,
		contacts:   contacts,
	}
}

// Routes builds the router. Metrics labeling uses mux route templates, so the
// metrics middleware has to be registered on the router itself.
func (s *Server) Routes(m *metrics.HTTPMetrics) *mux.Router {
	r := mux.NewRouter()
	if m != nil {
		r.Use(middleware.MetricsMiddleware(m))
	}

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.GetPrometheusHandler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/user", s.handleGetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", s.handleUpdateProfile).Methods(http.MethodPost)

	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{slug}", s.handleGetCategory).Methods(http.MethodGet)

	api.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{slug}", s.handleGetProduct).Methods(http.MethodGet)

	api.HandleFunc("/cart", s.handleGetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", s.handleAddToCart).Methods(http.MethodPost)
	api.HandleFunc("/cart", s.handleClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/{productId:[0-9]+}", s.handleUpdateCartItem).Methods(http.MethodPut)
	api.HandleFunc("/cart/{productId:[0-9]+}", s.handleRemoveFromCart).Methods(http.MethodDelete)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/orders", s.handleListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}", s.handleGetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id:[0-9]+}/status", s.handleUpdateOrderStatus).Methods(http.MethodPatch)

	api.HandleFunc("/contact", s.handleCreateContactMessage).Methods(http.MethodPost)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
