package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "broken yaml", content: "invalid: yaml: content: ["},
		{name: "unknown store", content: "exclusion:\n  store: memcached\n"},
		{name: "admin without password", content: "admin:\n  user: admin\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(cfgFile, []byte(tt.content), 0o600))

			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			err := run(ctx, Opts{Config: cfgFile})
			require.Error(t, err)
			require.Contains(t, err.Error(), "failed to load config")
		})
	}
}

func TestRun_RedisUnavailable(t *testing.T) {
	port := freePort(t)
	cfgFile := writeConfig(t, port, "exclusion:\n  store: redis\nredis:\n  addr: 127.0.0.1:1\n")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRun_ServerStartStop(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name  string
		extra string
	}{
		{name: "settings store"},
		{name: "redis store", extra: fmt.Sprintf("exclusion:\n  store: redis\nredis:\n  addr: %s\n", mr.Addr())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := freePort(t)
			cfgFile := writeConfig(t, port, tt.extra)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			serverErr := make(chan error, 1)
			go func() { serverErr <- run(ctx, Opts{Config: cfgFile}) }()
			waitForServer(t, port)

			base := fmt.Sprintf("http://127.0.0.1:%d", port)
			client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}

			// create a published page hidden from lists and a regular one
			for _, form := range []url.Values{
				{"title": {"Hidden Page"}, "status": {"publish"}, "exclude_this_page": {"1"}},
				{"title": {"Visible Page"}, "status": {"publish"}},
			} {
				resp, err := client.PostForm(base+"/admin/pages", form)
				require.NoError(t, err)
				_ = resp.Body.Close()
				require.Equal(t, http.StatusSeeOther, resp.StatusCode)
			}

			index := get(t, base+"/")
			assert.Contains(t, index, "Visible Page")
			assert.NotContains(t, index, "Hidden Page")

			admin := get(t, base+"/admin/")
			assert.Contains(t, admin, "Visible Page")
			assert.Contains(t, admin, "Hidden Page")

			// excluded page is still reachable by link
			assert.Contains(t, get(t, base+"/pages/hidden-page"), "<h1>Hidden Page</h1>")

			cancel()
			select {
			case err := <-serverErr:
				require.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("server shutdown timeout")
			}
		})
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "", "secret2")
	})
}

// writeConfig makes config file with sqlite database in temp dir, extra is appended as is
func writeConfig(t *testing.T, port int, extra string) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`server:
  listen: "127.0.0.1:%d"
  timeout: 5s
  base_url: "http://127.0.0.1:%d"
  site_title: "Test Site"
database:
  dsn: "file:%s?mode=rwc"
  max_open_conns: 1
`, port, port, filepath.Join(dir, "test.db"))
	content += extra

	cfgFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))
	return cfgFile
}

func freePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func waitForServer(t *testing.T, port int) {
	t.Helper()
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)
}

func get(t *testing.T, link string) string {
	t.Helper()
	resp, err := http.Get(link)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, link)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return strings.TrimSpace(string(body))
}
