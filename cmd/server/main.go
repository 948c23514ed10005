package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/stripe/stripe-go/v82"

	"barberpro/internal/api"
	"barberpro/internal/auth"
	"barberpro/internal/repository"
	"barberpro/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	catalogRepo := repository.NewCatalogRepository(database)
	apptRepo := repository.NewAppointmentRepository(database)
	clientRepo := repository.NewClientRepository(database)
	inventoryRepo := repository.NewInventoryRepository(database)
	cashRepo := repository.NewCashRepository(database)
	reportRepo := repository.NewReportRepository(database)
	userRepo := repository.NewUserRepository(database)
	jobRepo := repository.NewJobRepository(database)

	sender := service.NewSenderService()
	stripeSvc := service.NewStripeService()
	cashSvc := service.NewCashService(cashRepo)
	bookingSvc := service.NewBookingService(catalogRepo, apptRepo, clientRepo, stripeSvc, sender)
	apptSvc := service.NewAppointmentService(apptRepo, catalogRepo, clientRepo, cashSvc, stripeSvc)
	catalogSvc := service.NewCatalogService(catalogRepo, reportRepo)
	clientSvc := service.NewClientService(clientRepo, apptRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo)
	dashboardSvc := service.NewDashboardService(reportRepo)
	authSvc := service.NewAuthService(userRepo)
	jobSvc := service.NewJobService(jobRepo, sender)

	publicHandler := api.NewPublicHandler(bookingSvc)
	apptHandler := api.NewAppointmentHandler(apptSvc)
	catalogHandler := api.NewCatalogHandler(catalogSvc)
	clientHandler := api.NewClientHandler(clientSvc)
	inventoryHandler := api.NewInventoryHandler(inventorySvc)
	financialHandler := api.NewFinancialHandler(cashSvc, dashboardSvc)
	authHandler := api.NewAuthHandler(authSvc)
	stripeHandler := api.NewStripeWebhookHandler(os.Getenv("STRIPE_WEBHOOK_SECRET"), apptRepo, sender)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/public/availability", publicHandler.GetAvailability).Methods("GET")
	r.HandleFunc("/api/public/booking", publicHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/public/services", publicHandler.ListServices).Methods("GET")

	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/stripe/webhook", stripeHandler.HandleWebhook).Methods("POST")

	// Staff endpoints (protected)
	staff := r.PathPrefix("/api").Subrouter()
	staff.Use(auth.JWTAuthMiddleware)

	staff.HandleFunc("/appointments", apptHandler.ListAppointments).Methods("GET")
	staff.HandleFunc("/appointments", apptHandler.CreateAppointment).Methods("POST")
	staff.HandleFunc("/appointments/{id}", apptHandler.UpdateAppointment).Methods("PUT")
	staff.HandleFunc("/appointments/{id}", apptHandler.DeleteAppointment).Methods("DELETE")

	staff.HandleFunc("/barbers", catalogHandler.ListBarbers).Methods("GET")
	staff.HandleFunc("/barbers", catalogHandler.CreateBarber).Methods("POST")
	staff.HandleFunc("/barbers/{id}", catalogHandler.GetBarber).Methods("GET")
	staff.HandleFunc("/barbers/{id}", catalogHandler.UpdateBarber).Methods("PUT")
	staff.HandleFunc("/barbers/{id}", catalogHandler.DeleteBarber).Methods("DELETE")

	staff.HandleFunc("/services", catalogHandler.ListServices).Methods("GET")
	staff.HandleFunc("/services", catalogHandler.CreateService).Methods("POST")
	staff.HandleFunc("/services/{id}", catalogHandler.UpdateService).Methods("PUT")
	staff.HandleFunc("/services/{id}", catalogHandler.DeleteService).Methods("DELETE")

	staff.HandleFunc("/clients", clientHandler.ListClients).Methods("GET")
	staff.HandleFunc("/clients", clientHandler.CreateClient).Methods("POST")
	staff.HandleFunc("/clients/{id}", clientHandler.GetClient).Methods("GET")
	staff.HandleFunc("/clients/{id}", clientHandler.UpdateClient).Methods("PUT")
	staff.HandleFunc("/clients/{id}", clientHandler.DeleteClient).Methods("DELETE")

	staff.HandleFunc("/products", inventoryHandler.ListProducts).Methods("GET")
	staff.HandleFunc("/products", inventoryHandler.CreateProduct).Methods("POST")
	staff.HandleFunc("/products/{id}", inventoryHandler.UpdateProduct).Methods("PUT")
	staff.HandleFunc("/products/{id}", inventoryHandler.DeleteProduct).Methods("DELETE")

	staff.HandleFunc("/financial/report", financialHandler.GetReport).Methods("GET")
	staff.HandleFunc("/financial/transactions", financialHandler.CreateTransaction).Methods("POST")
	staff.HandleFunc("/dashboard", financialHandler.GetDashboard).Methods("GET")

	staff.HandleFunc("/auth/users", auth.RequireRole(authHandler.CreateUser, "admin")).Methods("POST")

	c := cron.New()
	c.AddFunc("0 20 * * *", func() {
		if err := jobSvc.SendAppointmentReminders(); err != nil {
			log.Printf("Reminder job failed: %v", err)
		}
	})
	c.AddFunc("0 23 * * *", func() {
		if err := jobSvc.CloseStaleCashRegisters(); err != nil {
			log.Printf("Cash close job failed: %v", err)
		}
	})
	c.AddFunc("@hourly", func() {
		if err := jobSvc.CancelStaleOnlineBookings(60); err != nil {
			log.Printf("Stale booking job failed: %v", err)
		}
	})
	c.Start()
	defer c.Stop()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "Stripe-Signature"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
