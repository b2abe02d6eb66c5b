// Package main is a one-shot CLI that scores tokens and prints the
// formatted assessment for each.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rugsniffer/internal/authority"
	"rugsniffer/internal/birdeye"
	"rugsniffer/internal/risk"
	"rugsniffer/internal/solana"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	mints := flag.String("mints", "", "Comma-separated token mint addresses (required)")
	birdeyeURL := flag.String("birdeye-url", envOr("BIRDEYE_URL", birdeye.DefaultBaseURL), "Birdeye API base URL")
	birdeyeKey := flag.String("birdeye-api-key", os.Getenv("BIRDEYE_API_KEY"), "Birdeye API key")
	rpcEndpoint := flag.String("rpc-endpoint", os.Getenv("SOLANA_RPC_ENDPOINT"), "Solana RPC HTTP endpoint (enables authority check)")
	providerTimeout := flag.Duration("provider-timeout", birdeye.DefaultTimeout, "Per-request timeout for signal providers")
	outputJSON := flag.Bool("json", false, "Output as JSON")

	flag.Parse()

	logger := log.New(os.Stderr, "[analyze] ", log.LstdFlags)

	if *mints == "" {
		logger.Fatal("--mints is required")
	}
	if *birdeyeKey == "" {
		logger.Fatal("--birdeye-api-key is required")
	}

	var mintList []string
	for _, m := range strings.Split(*mints, ",") {
		if m = strings.TrimSpace(m); m != "" {
			mintList = append(mintList, m)
		}
	}
	if len(mintList) == 0 {
		logger.Fatal("--mints contains no addresses")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	client := birdeye.NewClient(*birdeyeKey,
		birdeye.WithBaseURL(*birdeyeURL),
		birdeye.WithTimeout(*providerTimeout),
	)
	gateway := birdeye.NewGateway(client, logger)
	signals := birdeye.NewCachedGateway(gateway, birdeye.DefaultTTLConfig())

	engine := risk.New(risk.Options{Signals: signals, Logger: logger})

	var checker *authority.Checker
	if *rpcEndpoint != "" {
		checker = authority.NewChecker(solana.NewHTTPClient(*rpcEndpoint), logger)
	}

	start := time.Now()
	assessments := engine.Analyze(ctx, mintList)
	logger.Printf("Analyzed %d token(s) in %v", len(assessments), time.Since(start))

	if *outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(assessments); err != nil {
			logger.Fatalf("Encode output: %v", err)
		}
		return
	}

	for _, a := range assessments {
		fmt.Printf("Token: %s\n", a.Mint)
		fmt.Print(risk.FormatAssessment(a))
		if checker != nil {
			result := checker.Check(ctx, a.Mint)
			if result.OK {
				fmt.Println("Authorities: revoked")
			} else {
				fmt.Printf("Authorities: %s\n", result.Reason)
			}
		}
		fmt.Println()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
