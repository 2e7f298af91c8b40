package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

var (
	baseURL    = flag.String("url", "http://127.0.0.1:8090", "skillbot base url")
	numWorkers = flag.Int("workers", 50, "concurrent workers")
	duration   = flag.Duration("duration", 10*time.Second, "length of each phase")
	numUsers   = flag.Int("users", 200, "distinct user ids")
)

var skillNames = []string{"Python", "Guitar", "English", "Chess", "Running"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	flag.Parse()
	fmt.Println("=== SkillBot Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Users: %d\n\n", *numWorkers, *duration, *numUsers)

	fmt.Print("Waiting for server... ")
	if !waitForServer() {
		fmt.Println("FAILED: server not responding")
		return
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding skills (POST /skills) ---")
	seed()

	fmt.Println("\n--- Phase 2: Logging sessions (80% POST /sessions, 20% reads) ---")
	runPhase(func(rng *rand.Rand) result {
		if rng.Float64() < 0.8 {
			return addSession(rng)
		}
		return read(rng)
	})

	fmt.Println("\n--- Phase 3: Read-heavy (10% POST /sessions, 90% reads) ---")
	runPhase(func(rng *rand.Rand) result {
		if rng.Float64() < 0.1 {
			return addSession(rng)
		}
		return read(rng)
	})
}

func waitForServer() bool {
	for range 30 {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			drain(resp)
			return true
		}
		time.Sleep(200 * time.Millisecond)
	}
	return false
}

func seed() {
	var wg sync.WaitGroup
	sem := make(chan struct{}, *numWorkers)
	failed := 0
	var mu sync.Mutex
	for id := 1; id <= *numUsers; id++ {
		for _, name := range skillNames {
			wg.Add(1)
			sem <- struct{}{}
			go func(userID, name string) {
				defer func() { <-sem; wg.Done() }()
				r := do(http.MethodPost, "/skills", userID, map[string]string{"name": name}, "")
				if r.err {
					mu.Lock()
					failed++
					mu.Unlock()
				}
			}(strconv.Itoa(id), name)
		}
	}
	wg.Wait()
	fmt.Printf("  seeded %d skills, %d failed\n", *numUsers*len(skillNames), failed)
}

func runPhase(workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	all := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := all[r.endpoint]
			if !ok {
				s = &stats{}
				all[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(*duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(all)
}

func addSession(rng *rand.Rand) result {
	body := map[string]any{
		"key":     strings.ToLower(skillNames[rng.Intn(len(skillNames))]),
		"minutes": rng.Intn(120) + 1,
	}
	// Every tenth request is a retry of a fresh key, to exercise the idempotency cache.
	idem := ""
	if rng.Intn(10) == 0 {
		idem = uuid.NewString()
		do(http.MethodPost, "/sessions", randomUser(rng), body, idem)
	}
	return do(http.MethodPost, "/sessions", randomUser(rng), body, idem)
}

func read(rng *rand.Rand) result {
	user := randomUser(rng)
	switch rng.Intn(4) {
	case 0:
		return do(http.MethodGet, "/skills", user, nil, "")
	case 1:
		return do(http.MethodGet, "/stats", user, nil, "")
	case 2:
		return do(http.MethodGet, "/achievements", user, nil, "")
	default:
		key := strings.ToLower(skillNames[rng.Intn(len(skillNames))])
		return do(http.MethodGet, "/stats/skill?k="+key, user, nil, "")
	}
}

func randomUser(rng *rand.Rand) string {
	return strconv.Itoa(rng.Intn(*numUsers) + 1)
}

func do(method, path, userID string, body any, idempotencyKey string) result {
	endpoint := method + " " + strings.SplitN(path, "?", 2)[0]

	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, *baseURL+path, reader)
	if err != nil {
		return result{endpoint: endpoint, err: true}
	}
	req.Header.Set("X-User-ID", userID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint: endpoint, latency: lat, err: true}
	}
	drain(resp)
	return result{endpoint: endpoint, latency: lat, err: resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func printResults(all map[string]*stats) {
	var totalOps, totalErrors int64

	endpoints := make([]string, 0, len(all))
	for ep := range all {
		endpoints = append(endpoints, ep)
	}
	slices.Sort(endpoints)

	fmt.Printf("\n  %-24s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 90))

	for _, ep := range endpoints {
		s := all[ep]
		totalOps += s.count
		totalErrors += s.errors
		slices.Sort(s.latencies)

		fmt.Printf("  %-24s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	fmt.Println("  " + strings.Repeat("-", 90))
	if totalOps == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, float64(totalOps)/duration.Seconds())
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := min(int(float64(len(d))*p), len(d)-1)
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
