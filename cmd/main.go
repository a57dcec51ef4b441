package main

import (
	"context"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/pawhope/pawhope-gobackend/internal/config"
	"github.com/pawhope/pawhope-gobackend/internal/db"
	"github.com/pawhope/pawhope-gobackend/internal/handlers"
	"github.com/pawhope/pawhope-gobackend/internal/middleware"
	"github.com/pawhope/pawhope-gobackend/internal/services"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if cfg.MongoURI == "" {
		logrus.Fatal("MONGOURI environment variable not set")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable not set")
	}

	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("error disconnecting from MongoDB: %v", err)
		}
	}()
	logrus.Info("connected to MongoDB")

	database := client.Database(cfg.DBName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(indexCtx, database); err != nil {
		logrus.Fatalf("failed to create indexes: %v", err)
	}

	userService := services.NewUserService(database)
	petService := services.NewPetService(database)
	adoptionService := services.NewAdoptionService(database)
	campaignService := services.NewCampaignService(database)
	statsService := services.NewStatsService(database)
	stripeService := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeBaseURL)

	sessionHandler := handlers.NewSessionHandler(cfg.JWTSecret, cfg.IsProd)
	userHandler := handlers.NewUserHandler(userService)
	petHandler := handlers.NewPetHandler(petService)
	adoptionHandler := handlers.NewAdoptionHandler(adoptionService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	statsHandler := handlers.NewStatsHandler(statsService)
	paymentHandler := handlers.NewPaymentHandler(stripeService)

	authmw := middleware.NewAuth(cfg.JWTSecret, userService)

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("paw-hope server is running"))
	}).Methods("GET", "HEAD")

	// Session
	router.HandleFunc("/jwt", sessionHandler.IssueToken).Methods("POST")
	router.HandleFunc("/logout", sessionHandler.Logout).Methods("GET")

	// Users
	router.HandleFunc("/users/{email}", userHandler.Upsert).Methods("POST")
	router.HandleFunc("/users/role/{email}", authmw.RequireAuth(userHandler.GetRole)).Methods("GET")
	router.HandleFunc("/users", authmw.RequireAdmin(userHandler.List)).Methods("GET")
	router.HandleFunc("/users/role/{email}", authmw.RequireAdmin(userHandler.PromoteToAdmin)).Methods("PATCH")

	// Pets
	router.HandleFunc("/pets", petHandler.List).Methods("GET")
	router.HandleFunc("/pet/{id}", petHandler.Get).Methods("GET")
	router.HandleFunc("/pets/{email}", authmw.RequireAuth(petHandler.ListByOwner)).Methods("GET")
	router.HandleFunc("/pets", authmw.RequireAuth(petHandler.Create)).Methods("POST")
	router.HandleFunc("/pets/{id}", authmw.RequireAuth(petHandler.Update)).Methods("PUT")
	router.HandleFunc("/delete-pet/{id}", authmw.RequireAuth(petHandler.Delete)).Methods("DELETE")
	router.HandleFunc("/adopt-pet/{id}", authmw.RequireAuth(petHandler.SetAdopted)).Methods("PATCH")
	router.HandleFunc("/all-pets", authmw.RequireAdmin(petHandler.ListAll)).Methods("GET")

	// Adoption requests
	router.HandleFunc("/adoption-requests", authmw.RequireAuth(adoptionHandler.Create)).Methods("POST")
	router.HandleFunc("/adoption-request/{email}", authmw.RequireAuth(adoptionHandler.ListByOwner)).Methods("GET")
	router.HandleFunc("/delete-adoption-request/{id}", authmw.RequireAuth(adoptionHandler.Delete)).Methods("DELETE")

	// Donation campaigns
	router.HandleFunc("/donation-campaigns", campaignHandler.List).Methods("GET")
	router.HandleFunc("/donation-campaign/{id}", campaignHandler.Get).Methods("GET")
	router.HandleFunc("/donation-campaigns", authmw.RequireAuth(campaignHandler.Create)).Methods("POST")
	router.HandleFunc("/update-donation-campaign/{id}", authmw.RequireAuth(campaignHandler.Update)).Methods("PUT")
	router.HandleFunc("/donation-status/{id}", authmw.RequireAuth(campaignHandler.SetStatus)).Methods("PATCH")
	router.HandleFunc("/donations/{id}", authmw.RequireAdmin(campaignHandler.Delete)).Methods("DELETE")
	router.HandleFunc("/all-donation-campaigns", authmw.RequireAdmin(campaignHandler.ListAll)).Methods("GET")
	router.HandleFunc("/active-donations", campaignHandler.ActiveSample).Methods("GET")
	router.HandleFunc("/my-donation-campaigns/{email}", authmw.RequireAuth(campaignHandler.MyCampaigns)).Methods("GET")

	// Donations
	router.HandleFunc("/donations", authmw.RequireAuth(campaignHandler.CreateDonation)).Methods("POST")
	router.HandleFunc("/donator-list/{id}", authmw.RequireAuth(campaignHandler.ListDonators)).Methods("GET")
	router.HandleFunc("/refund-donation/{id}", authmw.RequireAuth(campaignHandler.RefundDonation)).Methods("DELETE")
	router.HandleFunc("/donation-campaign/donatedAmount/{id}", authmw.RequireAuth(campaignHandler.AdjustDonatedAmount)).Methods("PATCH")
	router.HandleFunc("/my-donations/{email}", authmw.RequireAuth(campaignHandler.MyDonations)).Methods("GET")

	// Payments
	router.HandleFunc("/create-payment-intent", authmw.RequireAuth(paymentHandler.CreateIntent)).Methods("POST")

	// Stats
	router.HandleFunc("/overview-stats/{email}", authmw.RequireAuth(statsHandler.Overview)).Methods("GET")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillahandlers.AllowCredentials(),
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logrus.Infof("paw-hope server running on port %s", cfg.Port)
	logrus.Fatal(server.ListenAndServe())
}
