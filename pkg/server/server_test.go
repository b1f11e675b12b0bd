package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uekit/api"
	"github.com/goliatone/go-uekit/pkg/config"
	"github.com/goliatone/go-uekit/pkg/engine"
	"github.com/goliatone/go-uekit/pkg/model"
	"github.com/goliatone/go-uekit/pkg/panels"
	"github.com/goliatone/go-uekit/pkg/panels/builtin"
	"github.com/goliatone/go-uekit/pkg/server"
)

func newServer(t *testing.T, options ...server.Option) *server.Server {
	t.Helper()
	reg, err := builtin.NewRegistry(context.Background(), engine.Default())
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	srv, err := server.New(reg, options...)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	srv := newServer(t, server.WithPage(config.Page{Title: "UE <Tools>", Subtitle: "sub", Notice: "<em>hi</em><script>x()</script>"}))
	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"UE &lt;Tools&gt;", "<em>hi</em>", `id="panel-material"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "<script>") {
		t.Errorf("notice script leaked")
	}
	if rec.Header().Get(server.RequestIDHeader) == "" {
		t.Errorf("missing request id header")
	}
}

func TestGenerateJSON(t *testing.T) {
	srv := newServer(t)
	eng := engine.Default()

	tests := []struct {
		name string
		path string
		body string
		want string
	}{
		{
			name: "class skeleton",
			path: "/api/panels/class-skeleton",
			body: `{"className":"Hero"}`,
			want: eng.ClassSkeleton(model.ClassSpec{Name: "Hero"}),
		},
		{
			name: "performance numbers",
			path: "/api/panels/performance",
			body: `{"fps":45,"drawCalls":1500,"triangles":2345678}`,
			want: eng.AnalyzeMetrics(model.PerformanceSample{FPS: 45, DrawCalls: 1500, Triangles: 2_345_678}),
		},
		{
			name: "exponent numbers saturate",
			path: "/api/panels/performance",
			body: `{"fps":1e400,"drawCalls":1e20,"triangles":99999999999999999999}`,
			want: eng.AnalyzeMetrics(model.ParsePerformanceSample("1e400", "1e20", "99999999999999999999")),
		},
		{
			name: "missing class name",
			path: "/api/panels/class-skeleton",
			body: `{}`,
			want: engine.MissingClassName,
		},
		{
			name: "empty body uses defaults",
			path: "/api/panels/material",
			body: ``,
			want: eng.MaterialSnippet(model.MaterialSpec{BaseColor: "#808080", Metallic: "0.0", Roughness: "0.5"}),
		},
		{
			name: "null values are blank",
			path: "/api/panels/asset-name",
			body: `{"assetName":null}`,
			want: engine.MissingAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := do(t, srv.Handler(), req)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Fatalf("content type = %q", ct)
			}
			if diff := cmp.Diff(tt.want, rec.Body.String()); diff != "" {
				t.Fatalf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateForm(t *testing.T) {
	srv := newServer(t)
	form := url.Values{"assetName": {"Rock"}, "assetType": {"Static Mesh"}}
	req := httptest.NewRequest(http.MethodPost, "/api/panels/asset-name", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := do(t, srv.Handler(), req)
	want := engine.Default().FormatAssetName(model.AssetSpec{Name: "Rock", Kind: model.AssetKindStaticMesh})
	if diff := cmp.Diff(want, rec.Body.String()); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateErrors(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name   string
		path   string
		body   string
		accept string
		status int
	}{
		{name: "unknown panel", path: "/api/panels/missing", body: `{}`, status: http.StatusNotFound},
		{name: "malformed json", path: "/api/panels/class-skeleton", body: `{"className":`, status: http.StatusBadRequest},
		{name: "non object json", path: "/api/panels/class-skeleton", body: `["Hero"]`, status: http.StatusBadRequest},
		{name: "nested value", path: "/api/panels/class-skeleton", body: `{"className":{"a":1}}`, accept: "application/json", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := do(t, srv.Handler(), req)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.accept == "application/json" {
				var payload map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
					t.Fatalf("decode error body: %v", err)
				}
				if payload["error"] == "" {
					t.Fatalf("expected error message")
				}
			}
		})
	}
}

func TestPanelSubmitRendersOutput(t *testing.T) {
	srv := newServer(t)
	form := url.Values{"baseColor": {"#ff0000"}, "metallic": {"1.0"}, "roughness": {"0.2"}}
	req := httptest.NewRequest(http.MethodPost, "/panels/material", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := do(t, srv.Handler(), req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`<pre class="output code-block">`,
		"FColor::FromHex(TEXT(&quot;ff0000&quot;))",
		`value="#ff0000"`,
		`class="tool-card active" id="panel-material"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPanelPagePrefill(t *testing.T) {
	srv := newServer(t)
	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/panels/asset-name?assetName=Door", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `value="Door"`) {
		t.Fatalf("expected prefilled value")
	}
	if strings.Contains(rec.Body.String(), "<pre") {
		t.Fatalf("GET must not render output")
	}

	rec = do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/panels/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown panel status = %d", rec.Code)
	}
}

func TestListPanels(t *testing.T) {
	srv := newServer(t)
	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/api/panels", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload struct {
		Panels []panels.Descriptor `json:"panels"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var ids []string
	for _, desc := range payload.Panels {
		ids = append(ids, desc.ID)
	}
	want := []string{"class-skeleton", "performance", "asset-name", "material"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticRoutes(t *testing.T) {
	srv := newServer(t)

	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	if !bytes.Equal(rec.Body.Bytes(), api.Document()) {
		t.Fatalf("openapi document mismatch")
	}

	rec = do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}

	rec = do(t, srv.Handler(), httptest.NewRequest(http.MethodGet, "/assets/uekit.css", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), ".tool-card") {
		t.Fatalf("stylesheet = %d", rec.Code)
	}

	rec = do(t, srv.Handler(), httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /healthz = %d, want 405", rec.Code)
	}
}

func TestRequestIDPropagation(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	srv := newServer(t, server.WithLogger(logger))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(server.RequestIDHeader, "req-123")
	rec := do(t, srv.Handler(), req)

	if got := rec.Header().Get(server.RequestIDHeader); got != "req-123" {
		t.Fatalf("request id = %q", got)
	}
	var entry map[string]any
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("decode access log: %v (%s)", err, logs.String())
	}
	if entry["request_id"] != "req-123" || entry["path"] != "/healthz" || entry["status"] != float64(200) {
		t.Fatalf("unexpected access log entry: %v", entry)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	reg := panels.NewRegistry()
	reg.MustRegister(panels.New(panels.Descriptor{ID: "boom", Title: "Boom"}, func(panels.Values) string {
		panic("kaboom")
	}))
	srv, err := server.New(reg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	rec := do(t, srv.Handler(), httptest.NewRequest(http.MethodPost, "/api/panels/boom", strings.NewReader("")))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestNewRequiresRegistry(t *testing.T) {
	if _, err := server.New(nil); err == nil {
		t.Fatalf("expected error for nil registry")
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("listen unavailable: %v", err)
	}
	srv := newServer(t, server.WithServerConfig(config.Server{ShutdownTimeout: time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("healthz body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
