// Package main runs the token risk assessment service:
// - Risk API: on-demand multi-factor scoring of Solana tokens
// - Watchlists: per-chat tracked tokens with aggregate risk
// - Wallet scan: holdings enumeration with per-token assessments
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rugsniffer/internal/authority"
	"rugsniffer/internal/birdeye"
	"rugsniffer/internal/domain"
	"rugsniffer/internal/membership"
	"rugsniffer/internal/names"
	"rugsniffer/internal/risk"
	"rugsniffer/internal/solana"
	"rugsniffer/internal/storage"
	chstore "rugsniffer/internal/storage/clickhouse"
	"rugsniffer/internal/storage/memory"
	"rugsniffer/internal/storage/migrations"
	pgstore "rugsniffer/internal/storage/postgres"
	"rugsniffer/internal/wallet"
	"rugsniffer/internal/watchlist"
)

const defaultHistoryLimit = 20

// Server holds all components of the service.
type Server struct {
	assessor  *risk.Cache
	authority *authority.Checker
	watchlist *watchlist.Service
	scanner   *wallet.Scanner
	stores    *allStores
	logger    *log.Logger

	recordTimeout time.Duration
	recordWG      sync.WaitGroup

	mu          sync.Mutex
	started     time.Time
	assessments int
}

// allStores holds all storage implementations.
type allStores struct {
	watchlistStore  storage.WatchlistStore
	userStore       storage.UserStore
	assessmentStore storage.AssessmentStore
}

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	// Parse flags (env vars as defaults)
	listenAddr := flag.String("listen-addr", envOr("LISTEN_ADDR", ":8080"), "HTTP listen address")
	rpcEndpoint := flag.String("rpc-endpoint", os.Getenv("SOLANA_RPC_ENDPOINT"), "Solana RPC HTTP endpoint")
	birdeyeURL := flag.String("birdeye-url", envOr("BIRDEYE_URL", birdeye.DefaultBaseURL), "Birdeye API base URL")
	birdeyeKey := flag.String("birdeye-api-key", os.Getenv("BIRDEYE_API_KEY"), "Birdeye API key")
	postgresDSN := flag.String("postgres-dsn", os.Getenv("POSTGRES_DSN"), "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL/ClickHouse")
	signalTTL := flag.Duration("signal-ttl", birdeye.DefaultSignalTTL, "Cache TTL for overview/security signals")
	resultTTL := flag.Duration("result-ttl", risk.DefaultResultTTL, "Cache TTL for completed assessments")
	providerTimeout := flag.Duration("provider-timeout", birdeye.DefaultTimeout, "Per-request timeout for signal providers")
	recordTimeout := flag.Duration("record-timeout", 10*time.Second, "Timeout for background assessment recording")

	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	if *rpcEndpoint == "" {
		logger.Fatal("--rpc-endpoint is required")
	}
	if *birdeyeKey == "" {
		logger.Fatal("--birdeye-api-key is required")
	}
	if !*useMemory && (*postgresDSN == "" || *clickhouseDSN == "") {
		logger.Fatal("--postgres-dsn and --clickhouse-dsn are required (use --use-memory for in-memory storage)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, cleanup, err := createStores(ctx, *postgresDSN, *clickhouseDSN, *useMemory)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer cleanup()

	// Signal path: client -> gateway (absorbs errors) -> TTL cache
	client := birdeye.NewClient(*birdeyeKey,
		birdeye.WithBaseURL(*birdeyeURL),
		birdeye.WithTimeout(*providerTimeout),
	)
	gateway := birdeye.NewGateway(client, log.New(os.Stdout, "[birdeye] ", log.LstdFlags))
	ttls := birdeye.DefaultTTLConfig()
	ttls.PerEndpoint[birdeye.EndpointTokenOverview] = *signalTTL
	ttls.PerEndpoint[birdeye.EndpointTokenSecurity] = *signalTTL
	signals := birdeye.NewCachedGateway(gateway, ttls)

	engine := risk.New(risk.Options{
		Signals: signals,
		Logger:  log.New(os.Stdout, "[risk] ", log.LstdFlags),
	})
	assessor := risk.NewCache(engine, *resultTTL)

	rpc := solana.NewHTTPClient(*rpcEndpoint)
	checker := authority.NewChecker(rpc, log.New(os.Stdout, "[authority] ", log.LstdFlags))

	resolver := names.NewChain(logger,
		names.NewBirdeyeResolver(*birdeyeURL, *birdeyeKey),
		names.NewDexScreenerResolver(""),
	)

	server := &Server{
		assessor:      assessor,
		authority:     checker,
		watchlist:     watchlist.NewService(stores.watchlistStore, assessor, logger),
		scanner:       wallet.NewScanner(rpc, resolver, assessor, logger),
		stores:        stores,
		logger:        logger,
		recordTimeout: *recordTimeout,
		started:       time.Now(),
	}

	httpServer := &http.Server{
		Addr:    *listenAddr,
		Handler: server.routes(),
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("HTTP shutdown error: %v", err)
		}
		cancel()
	}()

	logger.Printf("Listening on %s", *listenAddr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("HTTP server error: %v", err)
	}

	// Drain background recorders before closing stores.
	server.recordWG.Wait()
	logger.Println("Shutdown complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// createStores creates all required stores and runs migrations.
func createStores(ctx context.Context, postgresDSN, clickhouseDSN string, useMemory bool) (*allStores, func(), error) {
	if useMemory {
		stores := &allStores{
			watchlistStore:  memory.NewWatchlistStore(),
			userStore:       memory.NewUserStore(),
			assessmentStore: memory.NewAssessmentStore(),
		}
		return stores, func() {}, nil
	}

	pool, err := pgstore.NewPool(ctx, postgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
	}

	chConn, err := migrations.RunClickhouseMigrations(ctx, clickhouseDSN)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("run clickhouse migrations: %w", err)
	}

	stores := &allStores{
		watchlistStore:  pgstore.NewWatchlistStore(pool),
		userStore:       pgstore.NewUserStore(pool),
		assessmentStore: chstore.NewAssessmentStore(chConn),
	}

	cleanup := func() {
		chConn.Close()
		pool.Close()
	}

	return stores, cleanup, nil
}

// routes builds the HTTP mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /status", s.handleStatus)

	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /token/{mint}", s.handleToken)
	mux.HandleFunc("GET /token/{mint}/history", s.handleTokenHistory)
	mux.HandleFunc("GET /authority/{mint}", s.handleAuthority)

	mux.HandleFunc("GET /watchlist/{chat}", s.handleWatchlistGet)
	mux.HandleFunc("POST /watchlist/{chat}", s.handleWatchlistAdd)
	mux.HandleFunc("DELETE /watchlist/{chat}/{mint}", s.handleWatchlistRemove)
	mux.HandleFunc("GET /watchlist/{chat}/export", s.handleWatchlistExport)

	mux.HandleFunc("POST /users", s.handleUserUpsert)
	mux.HandleFunc("GET /membership/{chat}", s.handleMembership)

	mux.HandleFunc("GET /wallet/{address}", s.handleWalletScan)

	return mux
}

// StatusResponse is the JSON response for /status endpoint.
type StatusResponse struct {
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	Assessments int    `json:"assessments"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := StatusResponse{
		Status:      "running",
		Uptime:      time.Since(s.started).String(),
		Assessments: s.assessments,
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// AnalyzeRequest is the JSON body for POST /analyze.
type AnalyzeRequest struct {
	Mints []string `json:"mints"`
}

// AssessmentResponse pairs an assessment with its rendered message.
type AssessmentResponse struct {
	domain.RiskAssessment
	Formatted string `json:"formatted"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Mints) == 0 {
		writeError(w, http.StatusBadRequest, "mints is required")
		return
	}

	results := make([]AssessmentResponse, 0, len(req.Mints))
	for _, mint := range req.Mints {
		a := s.assess(r.Context(), mint)
		results = append(results, AssessmentResponse{
			RiskAssessment: a,
			Formatted:      risk.FormatAssessment(a),
		})
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	a := s.assess(r.Context(), r.PathValue("mint"))
	writeJSON(w, http.StatusOK, AssessmentResponse{
		RiskAssessment: a,
		Formatted:      risk.FormatAssessment(a),
	})
}

// assess runs one cached assessment and records it in the background. The
// recording goroutine owns its own timeout context so a finished request
// cannot cancel the write.
func (s *Server) assess(ctx context.Context, mint string) domain.RiskAssessment {
	a := s.assessor.GetOrCompute(ctx, mint)

	s.mu.Lock()
	s.assessments++
	s.mu.Unlock()

	rec := domain.RecordFromAssessment(a, time.Now())
	s.recordWG.Add(1)
	go func() {
		defer s.recordWG.Done()
		recordCtx, cancel := context.WithTimeout(context.Background(), s.recordTimeout)
		defer cancel()
		if err := s.stores.assessmentStore.Insert(recordCtx, rec); err != nil {
			s.logger.Printf("record assessment for %s: %v", mint, err)
		}
	}()

	return a
}

func (s *Server) handleTokenHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	records, err := s.stores.assessmentStore.GetByMint(r.Context(), r.PathValue("mint"), limit)
	if err != nil {
		s.logger.Printf("token history: %v", err)
		writeError(w, http.StatusInternalServerError, "history lookup failed")
		return
	}
	if records == nil {
		records = []*domain.AssessmentRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleAuthority(w http.ResponseWriter, r *http.Request) {
	result := s.authority.Check(r.Context(), r.PathValue("mint"))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWatchlistGet(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatParam(w, r)
	if !ok {
		return
	}

	overview, err := s.watchlist.Assess(r.Context(), chatID)
	if err != nil {
		s.logger.Printf("watchlist assess: %v", err)
		writeError(w, http.StatusInternalServerError, "watchlist lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// WatchlistAddRequest is the JSON body for POST /watchlist/{chat}.
type WatchlistAddRequest struct {
	Mint string `json:"mintAddress"`
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatParam(w, r)
	if !ok {
		return
	}

	var req WatchlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.watchlist.Add(r.Context(), chatID, req.Mint)
	switch {
	case errors.Is(err, watchlist.ErrInvalidMint):
		writeError(w, http.StatusBadRequest, "invalid mint address")
	case errors.Is(err, watchlist.ErrLimitReached):
		writeError(w, http.StatusConflict, fmt.Sprintf("watchlist limit of %d reached", watchlist.MaxTokens))
	case errors.Is(err, storage.ErrDuplicateKey):
		writeError(w, http.StatusConflict, "token already watched")
	case err != nil:
		s.logger.Printf("watchlist add: %v", err)
		writeError(w, http.StatusInternalServerError, "watchlist add failed")
	default:
		w.WriteHeader(http.StatusCreated)
	}
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatParam(w, r)
	if !ok {
		return
	}

	err := s.watchlist.Remove(r.Context(), chatID, r.PathValue("mint"))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "token not watched")
	case err != nil:
		s.logger.Printf("watchlist remove: %v", err)
		writeError(w, http.StatusInternalServerError, "watchlist remove failed")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// WatchlistExportResponse carries the base64-encoded CSV document.
type WatchlistExportResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"contentBase64"`
}

func (s *Server) handleWatchlistExport(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatParam(w, r)
	if !ok {
		return
	}

	overview, err := s.watchlist.Assess(r.Context(), chatID)
	if err != nil {
		s.logger.Printf("watchlist export: %v", err)
		writeError(w, http.StatusInternalServerError, "watchlist export failed")
		return
	}

	encoded, err := watchlist.ExportCSV(overview.Assessments)
	if err != nil {
		s.logger.Printf("watchlist export: %v", err)
		writeError(w, http.StatusInternalServerError, "watchlist export failed")
		return
	}

	writeJSON(w, http.StatusOK, WatchlistExportResponse{
		Filename:   fmt.Sprintf("watchlist_%d.csv", chatID),
		ContentB64: encoded,
	})
}

// UserUpsertRequest is the JSON body for POST /users.
type UserUpsertRequest struct {
	ChatID          int64      `json:"chatId"`
	WalletAddress   string     `json:"walletAddress"`
	MembershipStart *time.Time `json:"membershipStart"`
	TrialStart      *time.Time `json:"trialStart"`
}

func (s *Server) handleUserUpsert(w http.ResponseWriter, r *http.Request) {
	var req UserUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ChatID == 0 {
		writeError(w, http.StatusBadRequest, "chatId is required")
		return
	}
	if req.WalletAddress != "" && !solana.ValidateAddress(req.WalletAddress) {
		writeError(w, http.StatusBadRequest, "invalid wallet address")
		return
	}

	err := s.stores.userStore.Upsert(r.Context(), &domain.User{
		ChatID:          req.ChatID,
		WalletAddress:   req.WalletAddress,
		MembershipStart: req.MembershipStart,
		TrialStart:      req.TrialStart,
	})
	if err != nil {
		s.logger.Printf("user upsert: %v", err)
		writeError(w, http.StatusInternalServerError, "user upsert failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMembership(w http.ResponseWriter, r *http.Request) {
	chatID, ok := chatParam(w, r)
	if !ok {
		return
	}

	user, err := s.stores.userStore.Get(r.Context(), chatID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not registered")
		return
	}
	if err != nil {
		s.logger.Printf("membership lookup: %v", err)
		writeError(w, http.StatusInternalServerError, "membership lookup failed")
		return
	}

	writeJSON(w, http.StatusOK, membership.Info(user.MembershipStart, user.TrialStart, time.Now()))
}

func (s *Server) handleWalletScan(w http.ResponseWriter, r *http.Request) {
	holdings, err := s.scanner.Scan(r.Context(), r.PathValue("address"))
	if errors.Is(err, wallet.ErrInvalidWallet) {
		writeError(w, http.StatusBadRequest, "invalid wallet address")
		return
	}
	if err != nil {
		s.logger.Printf("wallet scan: %v", err)
		writeError(w, http.StatusInternalServerError, "wallet scan failed")
		return
	}
	writeJSON(w, http.StatusOK, holdings)
}

func chatParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	chatID, err := strconv.ParseInt(r.PathValue("chat"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return 0, false
	}
	return chatID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
