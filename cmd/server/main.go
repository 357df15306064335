package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/barbosa-jorge/game-deck/internal/api"
	"github.com/barbosa-jorge/game-deck/internal/config"
	"github.com/barbosa-jorge/game-deck/internal/service"
	"github.com/barbosa-jorge/game-deck/internal/store"
	"github.com/barbosa-jorge/game-deck/internal/store/memory"
	"github.com/barbosa-jorge/game-deck/internal/store/sqlite"
)

func main() {
	log.SetPrefix("[game-deck] ")

	// A .env file is optional; real environments set the variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var gs store.GameStore
	if cfg.SQLitePath != "" {
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("open sqlite store: %v", err)
		}
		defer db.Close()
		gs = db
		log.Printf("using sqlite store at %s", cfg.SQLitePath)
	} else {
		gs = memory.New()
		log.Printf("using in-memory store")
	}

	gameH := &api.GameHandler{Service: service.New(gs)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/games", gameH.Games)
	mux.HandleFunc("/api/games/", gameH.Game)

	log.Printf("server started at http://localhost%s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, cors(mux)); err != nil {
		log.Fatal(err)
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
