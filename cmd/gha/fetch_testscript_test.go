package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/tracklet/tracklet/internal/testsupport"
)

const scriptEvents = `[
  {"type":"PushEvent","repo":{"name":"octo/hello"},"payload":{"commits":[{},{}]},"created_at":"2024-03-01T12:00:00Z"},
  {"type":"IssuesEvent","repo":{"name":"octo/hello"},"payload":{"action":"opened","issue":{"title":"Crash on start"}},"created_at":"2024-03-01T13:00:00Z"},
  {"type":"WatchEvent","repo":{"name":"octo/world"},"payload":{"action":"started"},"created_at":"2024-03-01T14:00:00Z"}
]`

// newFakeAPI serves a canned per-user events endpoint.
func newFakeAPI() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, scriptEvents)
	})
	mux.HandleFunc("/users/quiet/events", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	})
	mux.HandleFunc("/users/limited/events", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rate limit exceeded"}`, http.StatusForbidden)
	})
	mux.HandleFunc("/users/broken/events", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<!doctype html>")
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func TestFetchScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			if err := testsupport.SetupScriptEnv(t, env); err != nil {
				return err
			}

			server := newFakeAPI()
			env.Defer(server.Close)

			cfg := fmt.Sprintf("[activity]\napi-url = %q\n", server.URL)
			return os.WriteFile(filepath.Join(env.WorkDir, "tracklet.toml"), []byte(cfg), 0o644)
		},
	})
}
