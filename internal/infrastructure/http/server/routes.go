package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gerai/storefront-service/internal/infrastructure/http/middleware"
	"github.com/gerai/storefront-service/internal/infrastructure/monitoring"
)

func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", s.healthHandler.HandleHealth())

	mux.HandleFunc("/products", s.catalogHandler.HandleListProducts)
	mux.HandleFunc("/products/", s.catalogHandler.HandleGetProduct)
	mux.HandleFunc("/categories", s.catalogHandler.HandleListCategories)

	mux.HandleFunc("/cart", s.cartHandler.HandleCart)
	mux.HandleFunc("/cart/items", s.cartHandler.HandleAddItem)
	mux.HandleFunc("/cart/items/", s.cartHandler.HandleCartItem)

	mux.HandleFunc("/checkout", s.checkoutHandler.HandleCheckout())

	mux.HandleFunc("/admin/products", s.adminHandler.HandleCreateProduct)
	mux.HandleFunc("/admin/products/", s.adminHandler.HandleProduct)

	handler := middleware.NewRecoveryMiddleware(s.logger)(mux)
	handler = middleware.NewLoggingMiddleware(s.logger)(handler)
	handler = monitoring.WrapHandler(handler)
	handler = s.corsMiddleware(handler)
	handler = s.timeoutMiddleware(handler)

	return handler
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "300")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) timeoutMiddleware(next http.Handler) http.Handler {
	return http.TimeoutHandler(next, 60*time.Second, "Request timeout")
}
