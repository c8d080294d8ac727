package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type TestClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewTestClient(baseURL, apiKey string) *TestClient {
	jar, _ := cookiejar.New(nil)
	return &TestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
			Jar:     jar,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	testType := flag.String("test", "all", "Test type: all, health, state, profile, warning, calendar")
	apiKey := flag.String("key", "", "Gemini API key for live generation (optional)")
	flag.Parse()

	client := NewTestClient(*baseURL, *apiKey)

	printHeader("Creator Command Center - Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAllTests()
	case "health":
		client.testHealthCheck()
	case "state":
		client.testState()
	case "profile":
		client.testSaveProfile()
	case "warning":
		client.testMissingInput()
	case "calendar":
		client.testCalendar()
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, state, profile, warning, calendar")
		os.Exit(1)
	}
}

func (tc *TestClient) runAllTests() {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", tc.testHealthCheck},
		{"Session State", tc.testState},
		{"Save Profile", tc.testSaveProfile},
		{"Missing Input", tc.testMissingInput},
		{"Calendar", tc.testCalendar},
	}

	passed := 0
	failed := 0

	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Test Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	fmt.Printf("Total: %d\n", passed+failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func (tc *TestClient) testHealthCheck() bool {
	printTestHeader("Testing Health Check Endpoint")

	url := fmt.Sprintf("%s/health", tc.baseURL)
	fmt.Printf("GET %s\n", url)

	resp, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		return false
	}

	if string(body) != "OK" {
		printError(fmt.Sprintf("Expected body 'OK', got '%s'", string(body)))
		return false
	}

	printSuccess("Health check passed")
	return true
}

func (tc *TestClient) testState() bool {
	printTestHeader("Testing Session State Endpoint")

	body, ok := tc.getJSON("/api/state")
	if !ok {
		return false
	}

	var state map[string]interface{}
	if err := json.Unmarshal(body, &state); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}

	for _, field := range []string{"session_id", "has_credential", "results"} {
		if _, ok := state[field]; !ok {
			printError(fmt.Sprintf("Missing required field: %s", field))
			return false
		}
	}

	printSuccess("Session state is valid")
	printJSON(body)
	return true
}

func (tc *TestClient) testSaveProfile() bool {
	printTestHeader("Testing Brand Profile Save")

	profile := map[string]interface{}{
		"name":           "Acme",
		"platform":       "LinkedIn",
		"tone":           "Bold",
		"industry":       "Other",
		"goals":          []string{"Sales"},
		"description":    "Smoke test brand",
		"content_length": "Short",
	}
	body, ok := tc.postJSON("/profile", profile)
	if !ok {
		return false
	}

	var resp struct {
		Profile map[string]interface{} `json:"profile"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if resp.Profile["name"] != "Acme" {
		printError(fmt.Sprintf("Expected saved name 'Acme', got '%v'", resp.Profile["name"]))
		return false
	}

	printSuccess("Brand profile saved")
	printJSON(body)
	return true
}

func (tc *TestClient) testMissingInput() bool {
	printTestHeader("Testing Missing Input Warning")

	body, ok := tc.postJSON("/ideas", map[string]interface{}{"focus": "", "count": 5})
	if !ok {
		return false
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if w, _ := resp["warning"].(string); w == "" {
		printError("Expected a warning for empty focus text")
		printJSON(body)
		return false
	}
	if _, ok := resp["result"]; ok {
		printError("Expected no result for a rejected action")
		return false
	}

	printSuccess("Empty input rejected without generation")
	return true
}

func (tc *TestClient) testCalendar() bool {
	printTestHeader("Testing Calendar Generation and Download")

	if tc.apiKey != "" {
		if _, ok := tc.postJSON("/credential", map[string]string{"api_key": tc.apiKey}); !ok {
			return false
		}
		fmt.Printf("%sUsing live API key%s\n", colorYellow, colorReset)
	} else {
		fmt.Printf("%sNo -key given, expecting the missing credential message%s\n", colorYellow, colorReset)
	}

	body, ok := tc.postJSON("/calendar", map[string]interface{}{"duration": 7, "posts_per_week": 3})
	if !ok {
		return false
	}
	var resp struct {
		Result  string `json:"result"`
		Failure string `json:"failure"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if tc.apiKey == "" && resp.Failure != "missing_credential" {
		printError(fmt.Sprintf("Expected failure 'missing_credential', got '%s'", resp.Failure))
		return false
	}

	url := fmt.Sprintf("%s/calendar/download", tc.baseURL)
	fmt.Printf("GET %s\n", url)
	dl, err := tc.client.Get(url)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer dl.Body.Close()

	content, _ := io.ReadAll(dl.Body)
	if dl.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", dl.StatusCode))
		return false
	}
	if string(content) != resp.Result {
		printError("Downloaded calendar differs from the generated result")
		return false
	}

	printSuccess(fmt.Sprintf("Calendar downloaded (%s)", dl.Header.Get("Content-Disposition")))
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(string(content))
	fmt.Println(strings.Repeat("=", 80))
	return true
}

func (tc *TestClient) getJSON(path string) ([]byte, bool) {
	url := tc.baseURL + path
	fmt.Printf("GET %s\n", url)

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	return tc.do(req)
}

func (tc *TestClient) postJSON(path string, payload interface{}) ([]byte, bool) {
	url := tc.baseURL + path
	fmt.Printf("POST %s\n", url)

	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return tc.do(req)
}

func (tc *TestClient) do(req *http.Request) ([]byte, bool) {
	resp, err := tc.client.Do(req)
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return nil, false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return nil, false
	}
	return body, true
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}

func printJSON(data []byte) {
	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, data, "", "  "); err == nil {
		fmt.Printf("\n%sResponse:%s\n%s\n", colorYellow, colorReset, prettyJSON.String())
	}
}
