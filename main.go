package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"BoltLab/internal/analysis"
	"BoltLab/internal/auth"
	classical "BoltLab/internal/calc/classical"
	export "BoltLab/internal/calc/export"
	autodesign "BoltLab/internal/calc/premium/autodesign"
	batch "BoltLab/internal/calc/premium/batch"
	importer "BoltLab/internal/calc/premium/importer"
	recommend "BoltLab/internal/calc/premium/recommend"
	report "BoltLab/internal/calc/report"
	vdi "BoltLab/internal/calc/vdi"
	"BoltLab/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	analysisH := &analysis.Handler{Repo: store}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	vdiH := &vdi.Handler{}
	classicalH := &classical.Handler{}
	reportH := &report.Handler{}
	exportH := &export.Handler{}
	batchH := &batch.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/tools/vdi/calc", vdiH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/classical/torque", classicalH.Torque).Methods("POST")
	secureApi.HandleFunc("/tools/classical/clamping", classicalH.Clamping).Methods("POST")
	secureApi.HandleFunc("/tools/classical/validate", classicalH.Validate).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/premium/batch/vdi", batchH.Joints).Methods("POST")
	secureApi.HandleFunc("/premium/autodesign/bolt", autodesignH.Bolt).Methods("POST")
	secureApi.HandleFunc("/premium/recommend/preload", recommendH.Preload).Methods("POST")
	secureApi.HandleFunc("/premium/import/xlsx", importerH.Joints).Methods("POST")
	secureApi.HandleFunc("/premium/export/xlsx", exportH.Joints).Methods("POST")

	secureApi.HandleFunc("/analyses", analysisH.Save).Methods("POST")
	secureApi.HandleFunc("/analyses", analysisH.List).Methods("GET")
	secureApi.HandleFunc("/analyses/{id:[0-9]+}", analysisH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")
	fmt.Println("Закрытие активных соединений")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Ошибка при остановке сервера: %v", err)
	}
	log.Println("Сервер успешно остановлен")

	wg.Wait()
}
