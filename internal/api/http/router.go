package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

// Services bundles the service dependencies of the HTTP API.
type Services struct {
	Auth           service.AuthService
	Motorcycles    service.MotorcycleService
	DeliveryPeople service.DeliveryPersonService
	Rentals        service.RentalService
	Notifications  service.NotificationService
	Store          storage.Storage
}

// NewRouter builds the API router. Auth endpoints are public; everything
// else requires a valid token.
func NewRouter(services *Services, tokens security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	authHandler := NewAuthHandler(services.Auth)
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	motorcycleHandler := NewMotorcycleHandler(services.Motorcycles)
	api.HandleFunc("/motorcycles", motorcycleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/motorcycles", motorcycleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/motorcycles/{id}/license-plate", motorcycleHandler.UpdateLicensePlate).Methods(http.MethodPut)
	api.HandleFunc("/motorcycles/{id}", motorcycleHandler.Delete).Methods(http.MethodDelete)

	personHandler := NewDeliveryPersonHandler(services.DeliveryPeople)
	api.HandleFunc("/delivery-persons", personHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/delivery-persons", personHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/delivery-persons/by-cnpj/{cnpj}", personHandler.GetByCnpj).Methods(http.MethodGet)
	api.HandleFunc("/delivery-persons/by-license/{licenseNumber}", personHandler.GetByLicenseNumber).Methods(http.MethodGet)
	api.HandleFunc("/delivery-persons/{id}", personHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/delivery-persons/{id}/license-image", personHandler.UploadLicenseImage).Methods(http.MethodPut)
	imageHandler := NewLicenseImageHandler(services.DeliveryPeople, services.Store)
	api.HandleFunc("/delivery-persons/{id}/license-image", imageHandler.Download).Methods(http.MethodGet)
	api.HandleFunc("/delivery-persons/{id}", personHandler.Delete).Methods(http.MethodDelete)

	rentalHandler := NewRentalHandler(services.Rentals)
	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals/by-motorcycle/{id}", rentalHandler.ListByMotorcycle).Methods(http.MethodGet)
	api.HandleFunc("/rentals/by-delivery-person/{id}", rentalHandler.ListByDeliveryPerson).Methods(http.MethodGet)
	api.HandleFunc("/rentals/active/by-delivery-person/{id}", rentalHandler.GetActiveByDeliveryPerson).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}/return", rentalHandler.Return).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}/calculate", rentalHandler.Calculate).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.Delete).Methods(http.MethodDelete)

	notificationHandler := NewNotificationHandler(services.Notifications)
	api.Handle("/notifications", RequireAdmin(http.HandlerFunc(notificationHandler.List))).Methods(http.MethodGet)

	return router
}
