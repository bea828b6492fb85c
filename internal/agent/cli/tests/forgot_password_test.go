package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/achola/yummy-recipes/internal/agent/cli"
	"github.com/achola/yummy-recipes/internal/agent/config"
)

func TestNewForgotPasswordCmd_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/forgot_password", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}

		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["email"] != "achola@example.com" {
			t.Fatalf("expected email achola@example.com, got %q", req["email"])
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "A reset link has been sent to your email",
			"status":  true,
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	app := &cli.App{ServerURL: srv.URL, Creds: &config.Credentials{}}

	cmd := cli.NewForgotPasswordCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--email", "achola@example.com"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "reset link sent if the account exists") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestNewForgotPasswordCmd_MissingEmail_ReturnsError(t *testing.T) {
	app := &cli.App{ServerURL: "https://127.0.0.1:8080", Creds: &config.Credentials{}}

	cmd := cli.NewForgotPasswordCmd(app)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "required") {
		t.Fatalf("unexpected error: %v", err)
	}
}
