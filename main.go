package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"kindred_server/metrics"
	"kindred_server/routes"
	"kindred_server/services"
	"kindred_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize Services
	directory := &services.UserDirectoryService{Dynamo: dynamoService}
	registry := services.NewMatchRegistry(&services.DynamoMatchStore{Dynamo: dynamoService})
	discovery := &services.DiscoveryService{Directory: directory, Registry: registry}

	// Presence is in-memory by default; point REDIS_ADDR at a Redis to share
	// it across instances.
	var presence services.PresenceTracker
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		log.Printf("Using Redis presence store at %s\n", redisAddr)
		presence = services.NewRedisPresenceService(redis.NewClient(&redis.Options{Addr: redisAddr}))
	} else {
		presence = services.NewPresenceService()
	}

	// Socket.IO server and the signaling relay publishing through it
	server, bus := socket.NewSocketServer()
	requireReachable := os.Getenv("CALL_REQUIRE_REACHABLE") != "false"
	relay := services.NewSignalingRelay(bus, presence, requireReachable)
	socket.RegisterHandlers(server, presence, relay)

	// Finished call sessions linger briefly so duplicate hangups stay
	// no-ops, then get swept.
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go relay.StartCleanupLoop(30*time.Second, time.Minute, stopCleanup)

	go func() {
		if err := server.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer server.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Kindred")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// Socket.IO transport
	r.PathPrefix("/socket.io/").Handler(server)

	// Register routes
	routes.RegisterActionRoutes(r, registry)
	routes.RegisterMatchRoutes(r, registry, directory)
	routes.RegisterDiscoveryRoutes(r, discovery)
	routes.RegisterPresenceRoutes(r, presence)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
