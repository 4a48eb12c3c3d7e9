package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// envelope mirrors the API response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    int             `json:"code"`
}

type joinResult struct {
	ReferralCode string `json:"referralCode"`
}

type reconciliation struct {
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
	Expected string `json:"expected"`
	Balanced bool   `json:"balanced"`
}

// TestStats contains aggregated test statistics
type TestStats struct {
	mu            sync.Mutex
	Requests      int
	Joined        int
	Conflicts     int
	Failed        int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
}

func (s *TestStats) record(status int, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests++
	s.ResponseTimes = append(s.ResponseTimes, elapsed)
	switch {
	case err != nil:
		s.Failed++
		s.ErrorCounts[err.Error()]++
	case status == http.StatusCreated:
		s.Joined++
	case status == http.StatusConflict:
		s.Conflicts++
	default:
		s.Failed++
		s.ErrorCounts[fmt.Sprintf("HTTP status code %d", status)]++
	}
}

type client struct {
	baseURL string
	admin   uint64
	http    *http.Client
}

func (c *client) do(ctx context.Context, caller uint64, method, path string, body any) (int, *envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", fmt.Sprint(caller))

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &env, nil
}

// fund registers the user and deposits enough to buy the program
func (c *client) fund(ctx context.Context, userID uint64, amount string) error {
	status, env, err := c.do(ctx, c.admin, http.MethodPost, "/accounts", map[string]any{"userId": userID})
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("register %d: HTTP %d %s", userID, status, env.Error)
	}

	status, env, err = c.do(ctx, c.admin, http.MethodPost, fmt.Sprintf("/accounts/%d/deposits", userID), map[string]any{
		"amount":    amount,
		"reference": fmt.Sprintf("load-test-%d", userID),
	})
	if err != nil {
		return err
	}
	if status >= 300 {
		return fmt.Errorf("deposit %d: HTTP %d %s", userID, status, env.Error)
	}
	return nil
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent requests")
	users := flag.Int("n", 100, "Number of joining users")
	firstID := flag.Uint64("first", 10000, "First user id to create")
	duplicates := flag.Int("dup", 3, "Concurrent join attempts per user")
	program := flag.String("program", "GS-I", "Program to join")
	deposit := flag.String("deposit", "100", "Amount deposited for every user")
	admin := flag.Uint64("admin", 1, "Admin user id")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	flag.Parse()

	ctx := context.Background()
	c := &client{baseURL: *baseURL, admin: *admin, http: &http.Client{Timeout: 10 * time.Second}}

	fmt.Printf("Load testing %s joins for %d users (%d attempts each)\n", *program, *users, *duplicates)
	fmt.Printf("Concurrency: %d\n", *concurrency)

	// Fund every user and let the root join first so everyone else has a referrer
	root := *firstID
	setup, setupCtx := errgroup.WithContext(ctx)
	setup.SetLimit(*concurrency)
	for i := 0; i <= *users; i++ {
		userID := root + uint64(i)
		setup.Go(func() error { return c.fund(setupCtx, userID, *deposit) })
	}
	if err := setup.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "Setup failed:", err)
		os.Exit(1)
	}

	status, env, err := c.do(ctx, root, http.MethodPost, "/club-avalanche/join", map[string]any{"program": *program})
	if err != nil || status != http.StatusCreated {
		fmt.Fprintf(os.Stderr, "Root join failed: status=%d err=%v\n", status, err)
		os.Exit(1)
	}
	var rootJoin joinResult
	if err := json.Unmarshal(env.Data, &rootJoin); err != nil {
		fmt.Fprintln(os.Stderr, "Root join response:", err)
		os.Exit(1)
	}

	stats := &TestStats{ErrorCounts: make(map[string]int)}
	startTime := time.Now()

	// Every user joins several times at once under the root's code. Exactly one
	// attempt per user may succeed; the rest must be rejected as conflicts.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i := 1; i <= *users; i++ {
		userID := root + uint64(i)
		for a := 0; a < *duplicates; a++ {
			g.Go(func() error {
				started := time.Now()
				status, _, err := c.do(gctx, userID, http.MethodPost, "/club-avalanche/join", map[string]any{
					"program":      *program,
					"referralCode": rootJoin.ReferralCode,
				})
				stats.record(status, time.Since(started), err)
				return nil
			})
		}
	}
	_ = g.Wait()
	totalTime := time.Since(startTime)

	printResults(stats, *users, totalTime)

	// The root's stored balance must equal the sum of its ledger rows
	status, env, err = c.do(ctx, *admin, http.MethodGet, fmt.Sprintf("/accounts/%d/reconciliation", root), nil)
	if err != nil || status != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Reconciliation failed: status=%d err=%v\n", status, err)
		os.Exit(1)
	}
	var results []reconciliation
	if err := json.Unmarshal(env.Data, &results); err != nil {
		fmt.Fprintln(os.Stderr, "Reconciliation response:", err)
		os.Exit(1)
	}

	fmt.Println("\n----------------- RECONCILIATION -----------------")
	ok := stats.Joined == *users
	for _, r := range results {
		fmt.Printf("%-6s balance=%s expected=%s balanced=%v\n", r.Currency, r.Balance, r.Expected, r.Balanced)
		ok = ok && r.Balanced
	}
	if !ok {
		fmt.Println("❌ Ledger invariants violated")
		os.Exit(1)
	}
	fmt.Println("✅ One membership per user and balances reconcile")
}

func printResults(stats *TestStats, users int, totalTime time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	times := make([]time.Duration, len(stats.ResponseTimes))
	copy(times, stats.ResponseTimes)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	percentile := func(p int) time.Duration {
		if len(times) == 0 {
			return 0
		}
		return times[len(times)*p/100]
	}

	var total time.Duration
	for _, t := range times {
		total += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = total / time.Duration(len(times))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.Requests)
	fmt.Printf("Memberships Created: %d of %d users\n", stats.Joined, users)
	fmt.Printf("Duplicate Rejected:  %d\n", stats.Conflicts)
	fmt.Printf("Failed Requests:     %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", totalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/s\n", float64(stats.Requests)/totalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	fmt.Printf("P50 Response:        %v\n", percentile(50))
	fmt.Printf("P90 Response:        %v\n", percentile(90))
	fmt.Printf("P99 Response:        %v\n", percentile(99))

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
