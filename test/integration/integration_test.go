//go:build integration

// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package integration_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

const (
	seedUsername = "admin"
	seedPassword = "integration-password"
	seedToken    = "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
)

var (
	binaryPath string
	apiPort    int
	configPath string
	serverCmd  *exec.Cmd
	tempDir    string
)

func TestMain(
	m *testing.M,
) {
	var err error

	tempDir, err = os.MkdirTemp("", "itembench-integration-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}

	apiPort, err = getFreePort()
	if err != nil {
		fmt.Fprintf(os.Stderr, "get free api port: %v\n", err)
		os.Exit(1)
	}

	binaryPath = filepath.Join(tempDir, "itembench")
	buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
	buildCmd.Dir = repoRoot()
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build binary: %v\n", err)
		os.Exit(1)
	}

	dbPath := filepath.Join(tempDir, "itembench.db")
	if err := createDatabase(dbPath); err != nil {
		fmt.Fprintf(os.Stderr, "create database: %v\n", err)
		os.Exit(1)
	}

	configPath = filepath.Join(tempDir, "itembench.yaml")
	configYAML := fmt.Sprintf(`---
api:
  server:
    port: %d
database:
  driver: sqlite
  path: %s
perflog:
  path: %s
docker:
  enabled: false
  path: %s
`,
		apiPort,
		dbPath,
		filepath.Join(tempDir, "performance.log"),
		filepath.Join(tempDir, "docker_metrics.csv"),
	)
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write config: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "integration: api=%d dir=%s\n", apiPort, tempDir)

	serverCmd = exec.Command(binaryPath, "server", "start", "-f", configPath)
	serverCmd.Env = os.Environ()
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start server: %v\n", err)
		os.Exit(1)
	}

	if err := waitForReady(15 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "wait for ready: %v\n", err)
		stopServer()
		os.Exit(1)
	}

	code := m.Run()

	stopServer()
	os.RemoveAll(tempDir)
	os.Exit(code)
}

// createDatabase provisions the schema and seeds one user. The server
// itself never creates tables.
func createDatabase(
	path string,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	schema := `
CREATE TABLE items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    value TEXT NOT NULL
);
CREATE TABLE users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    token TEXT NOT NULL UNIQUE
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := db.Exec(
		"INSERT INTO users (username, password, token) VALUES ($1, $2, $3)",
		seedUsername,
		seedPassword,
		seedToken,
	); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	return nil
}

func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("listen for free port: %w", err)
	}
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected addr type: %T", l.Addr())
	}

	return addr.Port, nil
}

func repoRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("get working directory: %v", err))
	}

	// test/integration/ is two levels below repo root
	return filepath.Join(wd, "..", "..")
}

func clientEnv() []string {
	return append(os.Environ(),
		fmt.Sprintf("ITEMBENCH_API_CLIENT_URL=http://127.0.0.1:%d", apiPort),
		fmt.Sprintf("ITEMBENCH_API_CLIENT_SECURITY_BEARER_TOKEN=%s", seedToken),
	)
}

func waitForReady(
	timeout time.Duration,
) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://127.0.0.1:%d/health", apiPort)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url) //nolint:gosec
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}

	return fmt.Errorf("server not ready after %s", timeout)
}

func stopServer() {
	if serverCmd != nil && serverCmd.Process != nil {
		_ = serverCmd.Process.Kill()
		_ = serverCmd.Wait()
	}
}

func runCLI(
	args ...string,
) (string, string, int) {
	fullArgs := append([]string{"-f", configPath}, args...)
	cmd := exec.Command(binaryPath, fullArgs...)
	cmd.Env = clientEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return stdout.String(), stderr.String(), exitCode
}

func parseJSON(
	raw string,
	target any,
) error {
	return json.Unmarshal([]byte(strings.TrimSpace(raw)), target)
}
