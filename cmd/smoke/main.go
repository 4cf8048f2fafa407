package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Manual smoke harness for a running gateway. It hits the public endpoints
// twice each and compares timings to confirm the fetch cache is doing its
// job. Not part of the test suite; run it against a live stack.

type ProbeResult struct {
	Endpoint     string        `json:"endpoint"`
	CacheStatus  string        `json:"cache_status"`
	ResponseTime time.Duration `json:"response_time"`
	DataSize     int           `json:"data_size"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

type SmokeSuite struct {
	BaseURL   string
	APIKey    string
	SessionID string
	Results   []ProbeResult
}

func main() {
	suite := &SmokeSuite{
		BaseURL:   envOr("SMOKE_BASE_URL", "http://localhost:8080/api/v1"),
		APIKey:    os.Getenv("OPERATOR_API_KEY"),
		SessionID: "smoke-session",
	}

	fmt.Println("Gateway smoke check")
	fmt.Println("===================")

	if err := pingRedis(); err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	fmt.Println("redis connection: OK")

	today := time.Now().Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	probes := []struct {
		name     string
		endpoint string
	}{
		{"Agenda today", "/agenda?start=" + today + "&end=" + today},
		{"Agenda week", "/agenda?start=" + today + "&end=" + nextWeek},
	}

	for _, probe := range probes {
		fmt.Printf("\nprobing: %s\n", probe.name)

		first := suite.probeEndpoint(probe.endpoint, "MISS")
		suite.Results = append(suite.Results, first)

		time.Sleep(100 * time.Millisecond)
		second := suite.probeEndpoint(probe.endpoint, "HIT")
		suite.Results = append(suite.Results, second)

		if first.Success && second.Success && first.ResponseTime > 0 {
			improvement := float64(first.ResponseTime-second.ResponseTime) / float64(first.ResponseTime) * 100
			fmt.Printf("   cached round trip: %.1f%% faster (%v -> %v)\n",
				improvement, first.ResponseTime, second.ResponseTime)
		}
	}

	suite.report()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func pingRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr: envOr("REDIS_ADDR", "localhost:6379"),
	})
	defer client.Close()

	return client.Ping(context.Background()).Err()
}

func (s *SmokeSuite) probeEndpoint(endpoint, expectedCacheStatus string) ProbeResult {
	url := s.BaseURL + endpoint
	start := time.Now()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return ProbeResult{Endpoint: endpoint, CacheStatus: "ERROR", Success: false, Error: err.Error()}
	}
	req.Header.Set("X-Session-ID", s.SessionID)
	if s.APIKey != "" {
		req.Header.Set("X-API-Key", s.APIKey)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return ProbeResult{
			Endpoint:     endpoint,
			CacheStatus:  "ERROR",
			ResponseTime: time.Since(start),
			Success:      false,
			Error:        err.Error(),
		}
	}
	defer resp.Body.Close()

	responseTime := time.Since(start)
	body, _ := io.ReadAll(resp.Body)

	// Timing-based guess; the gateway does not expose a cache header
	actualCacheStatus := "MISS"
	if expectedCacheStatus == "HIT" && responseTime < 50*time.Millisecond {
		actualCacheStatus = "HIT"
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 400

	result := ProbeResult{
		Endpoint:     endpoint,
		CacheStatus:  actualCacheStatus,
		ResponseTime: responseTime,
		DataSize:     len(body),
		Success:      success,
	}
	if !success {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	fmt.Printf("   [%s] %v (%d bytes) success=%v\n",
		actualCacheStatus, responseTime, len(body), success)

	return result
}

func (s *SmokeSuite) report() {
	fmt.Println("\nSUMMARY")
	fmt.Println("=======")

	successful := 0
	hits := 0
	var hitTime, missTime time.Duration
	misses := 0

	for _, result := range s.Results {
		if result.Success {
			successful++
		}
		switch result.CacheStatus {
		case "HIT":
			hits++
			hitTime += result.ResponseTime
		case "MISS":
			misses++
			missTime += result.ResponseTime
		}
	}

	fmt.Printf("probes: %d, successful: %d, cache hits: %d, misses: %d\n",
		len(s.Results), successful, hits, misses)

	if hits > 0 && misses > 0 {
		avgHit := hitTime / time.Duration(hits)
		avgMiss := missTime / time.Duration(misses)
		fmt.Printf("avg hit: %v, avg miss: %v\n", avgHit, avgMiss)
	}

	if successful < len(s.Results) {
		os.Exit(1)
	}
}
