package transport

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	contactapp "github.com/ksagri/agroexport-api/application/contact"
	productapp "github.com/ksagri/agroexport-api/application/product"
	userapp "github.com/ksagri/agroexport-api/application/user"
	"github.com/ksagri/agroexport-api/cmd/config"
	"github.com/ksagri/agroexport-api/constant"
	redisrepo "github.com/ksagri/agroexport-api/repository/redis"
)

type RestHandler struct {
	cfg        *config.Config
	UserApp    userapp.UserApp
	ContactApp contactapp.ContactApp
	ProductApp productapp.ProductApp
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, contactApp contactapp.ContactApp, productApp productapp.ProductApp, redisRepo redisrepo.Repository) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		cfg:        cfg,
		UserApp:    userApp,
		ContactApp: contactApp,
		ProductApp: productApp,
	}

	router.Use(LoggingMiddleware())

	api := router.PathPrefix("/api").Subrouter()
	api.Use(RateLimitMiddleware(cfg, redisRepo))

	// Liveness probe
	api.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// Public intake routes
	api.HandleFunc("/contact", rh.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/users/register", rh.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", rh.Login).Methods(http.MethodPost)

	// Public catalog; an admin with a token may see inactive items
	catalog := api.NewRoute().Subrouter()
	catalog.Use(OptionalAuthMiddleware(userApp))
	catalog.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	catalog.HandleFunc("/products/featured", rh.FeaturedProducts).Methods(http.MethodGet)
	catalog.HandleFunc("/products/categories", rh.ProductCategories).Methods(http.MethodGet)
	catalog.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	// Self-service account routes
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(userApp))
	authed.HandleFunc("/users/profile", rh.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/profile", rh.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/users/change-password", rh.ChangePassword).Methods(http.MethodPut)

	// Admin routes
	admin := api.NewRoute().Subrouter()
	admin.Use(AuthMiddleware(userApp), RequireRole(constant.RoleAdmin))
	admin.HandleFunc("/contact", rh.ListContacts).Methods(http.MethodGet)
	admin.HandleFunc("/contact/stats", rh.ContactStats).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}", rh.GetContact).Methods(http.MethodGet)
	admin.HandleFunc("/contact/{id}", rh.UpdateContact).Methods(http.MethodPut)
	admin.HandleFunc("/contact/{id}", rh.DeleteContact).Methods(http.MethodDelete)
	admin.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id}", rh.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id}", rh.DeleteProduct).Methods(http.MethodDelete)
	admin.HandleFunc("/users", rh.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", rh.DeleteUser).Methods(http.MethodDelete)

	// Internal callbacks (service API key, not user tokens)
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/contact/{id}/follow-up-due", rh.FollowUpDue).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, Response{Success: false, Message: "route not found"})
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	return cors(router)
}

// Health is the liveness probe.
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, nil, "Agro Export API is running")
}
