package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/WatthikonJ/Dreamable/database"
	"github.com/WatthikonJ/Dreamable/internal/handlers"
	"github.com/WatthikonJ/Dreamable/internal/router"
	"github.com/WatthikonJ/Dreamable/storage"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	addr := envOr("ADDR", ":3000")
	dbPath := envOr("DB_PATH", "data/dre.db")
	rosterSource := os.Getenv("ROSTER_URL")

	var rosterKey []byte
	if hexKey := os.Getenv("ROSTER_KEY"); hexKey != "" {
		key, err := hex.DecodeString(hexKey)
		if err != nil {
			log.Fatalf("invalid ROSTER_KEY: %v", err)
		}
		rosterKey = key
	}

	ctx := context.Background()

	store, err := database.Init(dbPath)
	if err != nil {
		log.Fatal("failed to init database:", err)
	}
	defer store.Close()

	database.SetUsers(store, database.LoadRoster(ctx, rosterSource, rosterKey))

	// Attachment storage is optional; without it uploads keep metadata only.
	keyId := os.Getenv("B2_KEY_ID")
	appKey := os.Getenv("B2_APP_KEY")
	bucketName := os.Getenv("B2_BUCKET")
	if keyId != "" && appKey != "" && bucketName != "" {
		b2, err := storage.Init(ctx, keyId, appKey, bucketName, os.Getenv("B2_BASE_URL"))
		if err != nil {
			log.Fatalf("Error initializing storage: %v", err)
		}
		handlers.Attachments = b2
		log.Println("B2 Storage ready:", b2.BaseUrl)
	}

	rt := router.New()
	register := func(pattern string, h func(*database.Store, http.ResponseWriter, *http.Request, router.Params)) {
		rt.Register(pattern, func(w http.ResponseWriter, r *http.Request, p router.Params) {
			h(store, w, r, p)
		})
	}

	register("home", handlers.HandleHome)
	register("login", handlers.HandleLogin)
	register("signup", handlers.HandleSignup)
	register("logout", handlers.HandleLogout)
	register("agenda", handlers.HandleAgenda)
	register("challenges/manage", handlers.HandleManageChallenges)
	register("challenges/create", handlers.HandleCreateChallenge)
	register("challenges/edit/:id", handlers.HandleEditChallenge)
	register("assignments/manage", handlers.HandleManageAssignments)
	register("assignments/create", handlers.HandleCreateAssignment)
	register("assignments/edit/:id", handlers.HandleEditAssignment)
	register("assignments/view/:id", handlers.HandleViewSubmission)
	register("credits/give", handlers.HandleGiveCredits)
	register("redeem", handlers.HandleRedeem)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.Handle("/", rt)

	log.Println("🚀 Server running at http://localhost" + addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
