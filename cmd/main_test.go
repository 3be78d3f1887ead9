package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/nailstudio-booking/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-10-18"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2026-10-18")
}

// ----------------- Tests for newRouter -----------------

func TestNewRouter(t *testing.T) {
	named := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(name))
		}
	}

	r := newRouter(routes{
		bookings:       named("bookings"),
		register:       named("register"),
		services:       named("services"),
		availableHours: named("available-hours"),
		swaggerURL:     "http://localhost/swagger/doc.json",
	})

	tests := []struct {
		name         string
		method       string
		target       string
		expectedCode int
		expectedBody string
	}{
		{name: "bookings post", method: http.MethodPost, target: "/bookings", expectedCode: http.StatusOK, expectedBody: "bookings"},
		{name: "bookings get reaches handler", method: http.MethodGet, target: "/bookings", expectedCode: http.StatusOK, expectedBody: "bookings"},
		{name: "register", method: http.MethodPost, target: "/register", expectedCode: http.StatusOK, expectedBody: "register"},
		{name: "services", method: http.MethodGet, target: "/services", expectedCode: http.StatusOK, expectedBody: "services"},
		{name: "available hours", method: http.MethodGet, target: "/available-hours?fecha=2026-10-20", expectedCode: http.StatusOK, expectedBody: "available-hours"},
		{
			name:         "services delete",
			method:       http.MethodDelete,
			target:       "/services",
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: `{"success":false,"message":"method not allowed"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := &config.Config{
		App: config.AppConfig{
			Host:              "127.0.0.1",
			Port:              "8086",
			LogLevel:          "debug",
			Timezone:          "UTC",
			BookingSlots:      []string{"09:00", "10:00"},
			AvailabilityCache: time.Minute,
			BcryptCost:        4,
		},
		Postgres: config.PostgresConfig{
			Host: pgHost, Port: pgPort.Int(), User: "user", Password: "password", DB: "testdb",
			MaxOpenConns: 5, MaxIdleConns: 2, Migrate: true,
		},
		Redis: config.RedisConfig{
			Host: redisHost, Port: redisPort.Int(), PoolSize: 10, MinIdleConns: 2,
		},
	}

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	base := "http://127.0.0.1:8086"
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/services")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 10*time.Second, 100*time.Millisecond)

	postForm := func(path string, form url.Values) (int, map[string]any) {
		resp, err := http.Post(base+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return resp.StatusCode, body
	}

	// Gel booking is stored at full price
	code, body := postForm("/bookings", url.Values{
		"nombre":   {"Ana"},
		"telefono": {"11 5555-1234"},
		"servicio": {"gel"},
		"fecha":    {time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")},
		"hora":     {"10:00"},
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(40000), body["datos"].(map[string]any)["precio"])

	// Second registration with the same username is rejected
	registration := url.Values{
		"nombre":   {"Ana"},
		"apellido": {"García"},
		"celular":  {"1155551234"},
		"usuario":  {"ana"},
		"password": {"secret1"},
	}
	code, _ = postForm("/register", registration)
	assert.Equal(t, http.StatusOK, code)

	registration.Set("celular", "1155550000")
	code, body = postForm("/register", registration)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "username already exists", body["message"])

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
