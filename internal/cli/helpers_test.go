package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aidanlsb/journey/internal/testutil"
)

var captureStdoutMu sync.Mutex

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	captureStdoutMu.Lock()
	defer captureStdoutMu.Unlock()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	outputCh := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		outputCh <- buf.String()
	}()

	fn()

	os.Stdout = orig
	_ = w.Close()
	return <-outputCh
}

// fixedNow is the clock every CLI test runs at.
var fixedNow = time.Date(2025, time.October, 24, 14, 30, 0, 0, time.Local)

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// setupCLI isolates the package globals, registers vaults in a fresh global
// config and loads it the way PersistentPreRunE does.
func setupCLI(t *testing.T, defaultVault string, vaults ...*testutil.TestVault) {
	t.Helper()

	prevVault := vaultName
	prevConfigPath := configPath
	prevJSON := jsonOutput
	prevNow := now
	prevStdin := stdinReader
	prevEditor := openEditor
	prevCfg := cfg
	prevResolved := resolvedConfigPath
	t.Cleanup(func() {
		vaultName = prevVault
		configPath = prevConfigPath
		jsonOutput = prevJSON
		now = prevNow
		stdinReader = prevStdin
		openEditor = prevEditor
		cfg = prevCfg
		resolvedConfigPath = prevResolved
		for _, cmd := range []*cobra.Command{rootCmd, initCmd, todayCmd, searchCmd} {
			resetFlags(cmd)
		}
	})

	for _, cmd := range []*cobra.Command{rootCmd, initCmd, todayCmd, searchCmd} {
		resetFlags(cmd)
	}
	vaultName = ""
	jsonOutput = false
	now = func() time.Time { return fixedNow }
	configPath = testutil.WriteGlobalConfig(t, defaultVault, vaults...)
	if err := loadGlobalConfig(); err != nil {
		t.Fatalf("loadGlobalConfig: %v", err)
	}
}

func setFlag(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	if err := cmd.Flags().Set(name, value); err != nil {
		t.Fatalf("set --%s=%s: %v", name, value, err)
	}
}

type jsonEnvelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *ErrorInfo      `json:"error"`
	Meta  *Meta           `json:"meta"`
}

func decodeEnvelope(t *testing.T, out string) jsonEnvelope {
	t.Helper()
	var env jsonEnvelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("decode JSON output: %v\n%s", err, out)
	}
	return env
}

func decodeData(t *testing.T, env jsonEnvelope, v interface{}) {
	t.Helper()
	if !env.OK {
		t.Fatalf("expected ok response, got error %+v", env.Error)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v\n%s", err, env.Data)
	}
}

func expectErrorCode(t *testing.T, out, code string) *ErrorInfo {
	t.Helper()
	env := decodeEnvelope(t, out)
	if env.OK || env.Error == nil {
		t.Fatalf("expected error %s, got ok response:\n%s", code, out)
	}
	if env.Error.Code != code {
		t.Fatalf("error code = %s, want %s (message: %s)", env.Error.Code, code, env.Error.Message)
	}
	return env.Error
}

// runRoot invokes the journey command body with the flags already set.
func runRoot(t *testing.T, args ...string) string {
	t.Helper()
	var runErr error
	out := captureStdout(t, func() {
		runErr = rootCmd.RunE(rootCmd, args)
	})
	if runErr != nil {
		t.Fatalf("journey %v: %v", args, runErr)
	}
	return out
}
