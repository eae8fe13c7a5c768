package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/hupe1980/advkit/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the CLI in-process with an isolated config home.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPairsInspectList(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	labels := writeFile(t, dir, "train.txt", "0\n1\n0\n1\n# tail\n2\n2\n")

	code, out, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "3", "--seed", "7", "--store-path", store)
	require.Equal(t, ExitSuccess, code, out)

	var pr PairsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &pr))
	assert.Equal(t, "train", pr.Name)
	assert.Equal(t, 6, pr.Samples)
	assert.Equal(t, 12, pr.Pairs)
	assert.Equal(t, 6, pr.Positives)
	require.NotNil(t, pr.Seed)
	assert.Equal(t, int64(7), *pr.Seed)
	assert.Equal(t, "go-json", pr.Codec)

	code, out, _ = runCLI(t, "inspect", "train", "--pairs", "--store-path", store)
	require.Equal(t, ExitSuccess, code, out)

	var ir InspectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &ir))
	assert.Equal(t, 1.0, ir.PosScore)
	assert.Equal(t, 0.0, ir.NegScore)
	assert.Equal(t, 3, ir.NumClasses)
	assert.Equal(t, 6, ir.NumSamples)
	assert.Equal(t, 12, ir.Pairs)
	assert.Len(t, ir.PairList, 12)
	assert.Len(t, ir.Scores, 12)

	code, out, _ = runCLI(t, "list", "--store-path", store)
	require.Equal(t, ExitSuccess, code, out)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"train"}, names)

	// same seed, same pairs
	code, _, _ = runCLI(t, "pairs", "--labels", labels, "--classes", "3", "--seed", "7", "--name", "again", "--store-path", store)
	require.Equal(t, ExitSuccess, code)
	code, out, _ = runCLI(t, "inspect", "again", "--pairs", "--store-path", store)
	require.Equal(t, ExitSuccess, code)
	var again InspectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &again))
	assert.Equal(t, ir.PairList, again.PairList)
}

func TestPairs_HumanOutput(t *testing.T) {
	dir := t.TempDir()
	labels := writeFile(t, dir, "l.json", "[0, 1, 1, 0]")

	code, out, _ := runCLI(t, "pairs", "--human", "--labels", labels, "--classes", "2", "--seed", "1",
		"--compression", "none", "--store-path", filepath.Join(dir, "s"))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Saved l: 8 pairs (4 positive, 4 negative) from 4 samples")
	assert.Contains(t, out, "seed:    1")
	assert.Contains(t, out, "none")
}

func TestPairs_Errors(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")

	t.Run("LabelOutOfRange", func(t *testing.T) {
		labels := writeFile(t, dir, "bad.txt", "0\n5\n")
		code, out, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "2", "--store-path", store)
		assert.Equal(t, ExitDataError, code)

		var er ErrorResponse
		require.NoError(t, json.Unmarshal([]byte(out), &er))
		assert.Equal(t, ExitDataError, er.Code)
		assert.Contains(t, er.Error, "invalid argument")
	})

	t.Run("SingleClass", func(t *testing.T) {
		labels := writeFile(t, dir, "one.txt", "0\n0\n")
		code, _, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "1", "--store-path", store)
		assert.Equal(t, ExitDataError, code)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		labels := writeFile(t, dir, "junk.txt", "0\nx\n")
		code, _, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "2", "--store-path", store)
		assert.Equal(t, ExitDataError, code)
	})

	t.Run("MissingFile", func(t *testing.T) {
		code, _, _ := runCLI(t, "pairs", "--labels", filepath.Join(dir, "nope.txt"), "--classes", "2", "--store-path", store)
		assert.Equal(t, ExitDataError, code)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		labels := writeFile(t, dir, "ok.txt", "0\n1\n")
		code, _, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "2", "--compression", "gzip", "--store-path", store)
		assert.Equal(t, ExitError, code)
	})

	t.Run("EscapingName", func(t *testing.T) {
		labels := writeFile(t, dir, "esc.txt", "0\n1\n")
		code, _, _ := runCLI(t, "pairs", "--labels", labels, "--classes", "2", "--name", "../escaped", "--store-path", store)
		assert.Equal(t, ExitDataError, code)

		_, err := os.Stat(filepath.Join(dir, "escaped"+manifest.Extension))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, n := range names {
		assert.NotEqual(t, "store", n.Name(), "failed runs must not create manifests")
	}
}

func TestPairs_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	labels := writeFile(t, dir, "l.yaml", "- 0\n- 1\n- 2\n")
	cfg := writeFile(t, dir, "config.yml", `
store:
  kind: local
  path: `+filepath.Join(dir, "cfgstore")+`
pairs:
  pos: 2
  neg: 0
  compression: lz4
  codec: json
  seed: 5
`)

	code, out, _ := runCLI(t, "--config", cfg, "pairs", "--labels", labels, "--classes", "3", "--compression", "none")
	require.Equal(t, ExitSuccess, code, out)

	var pr PairsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &pr))
	require.NotNil(t, pr.Seed)
	assert.Equal(t, int64(5), *pr.Seed)
	assert.Equal(t, "json", pr.Codec)
	assert.Equal(t, "none", pr.Compression, "flags override config")

	code, out, _ = runCLI(t, "--config", cfg, "inspect", "l")
	require.Equal(t, ExitSuccess, code, out)
	var ir InspectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &ir))
	assert.Equal(t, 2.0, ir.PosScore)
	assert.Equal(t, 0.0, ir.NegScore)
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	labels := writeFile(t, dir, "l.txt", "0\n1\n")

	bad := writeFile(t, dir, "bad.yml", "store: [unclosed\n")
	code, _, _ := runCLI(t, "--config", bad, "list")
	assert.Equal(t, ExitConfigError, code)

	unknown := writeFile(t, dir, "unknown.yml", "store:\n  kind: tape\n")
	code, _, _ = runCLI(t, "--config", unknown, "pairs", "--labels", labels, "--classes", "2")
	assert.Equal(t, ExitConfigError, code)

	// missing config file falls back to defaults
	cfg, err := LoadConfig(filepath.Join(dir, "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Pairs, cfg.Pairs)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("ADVKIT_STORE", "s3")
	t.Setenv("ADVKIT_BUCKET", "runs")
	t.Setenv("ADVKIT_SEED", "99")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.Store.Kind)
	assert.Equal(t, "runs", cfg.Store.Bucket)
	require.NotNil(t, cfg.Pairs.Seed)
	assert.Equal(t, int64(99), *cfg.Pairs.Seed)

	t.Setenv("ADVKIT_SEED", "abc")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestInspect_Errors(t *testing.T) {
	store := t.TempDir()

	code, _, _ := runCLI(t, "inspect", "missing", "--store-path", store)
	assert.Equal(t, ExitError, code)

	writeFile(t, store, "corrupt.advk", "definitely not a manifest")
	code, _, _ = runCLI(t, "inspect", "corrupt", "--store-path", store)
	assert.Equal(t, ExitDataError, code)
}

func TestTargets(t *testing.T) {
	dir := t.TempDir()
	labels := writeFile(t, dir, "t.txt", "0\n1\n2\n3\n0\n1\n2\n3\n")

	code, out, _ := runCLI(t, "targets", "--labels", labels, "--classes", "4", "--seed", "3", "--one-hot")
	require.Equal(t, ExitSuccess, code, out)

	var tr TargetsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, "per-sample", tr.Mode)
	require.Len(t, tr.Targets, 8)
	require.Len(t, tr.OneHot, 8)
	for i, target := range tr.Targets {
		assert.NotEqual(t, i%4, target)
		assert.Equal(t, 1.0, tr.OneHot[i][target])
	}

	code, out2, _ := runCLI(t, "targets", "--labels", labels, "--classes", "4", "--seed", "3", "--one-hot")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, out, out2)

	code, out, _ = runCLI(t, "targets", "--labels", labels, "--classes", "4", "--seed", "3", "--legacy")
	require.Equal(t, ExitSuccess, code)
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, "per-class", tr.Mode)
	for i := 0; i < 4; i++ {
		assert.Equal(t, tr.Targets[i], tr.Targets[i+4], "per-class targets are shared")
	}

	code, _, _ = runCLI(t, "targets", "--labels", labels, "--classes", "4", "--mode", "sideways")
	assert.Equal(t, ExitError, code)

	code, _, _ = runCLI(t, "targets", "--labels", labels, "--classes", "3")
	assert.Equal(t, ExitDataError, code)
}

func TestPerms(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chown is not supported on windows")
	}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	writeFile(t, filepath.Join(root, "a"), "f.txt", "x")

	gid := strconv.Itoa(os.Getgid())
	code, out, _ := runCLI(t, "perms", root, "--group", gid)
	require.Equal(t, ExitSuccess, code, out)

	var pr PermsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &pr))
	assert.Empty(t, pr.Failures)
	assert.Equal(t, "0774", pr.Mode)

	info, err := os.Stat(filepath.Join(root, "a", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o774), info.Mode().Perm())

	code, _, _ = runCLI(t, "perms", root, "--group", "no-such-group-advkit")
	assert.Equal(t, ExitError, code)

	code, out, _ = runCLI(t, "perms", filepath.Join(root, "missing"), "--group", gid)
	assert.Equal(t, ExitError, code)

	// a partial failure is one JSON document listing every failure
	var partial PermsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &partial), out)
	assert.NotContains(t, out, `"code"`)
	require.NotEmpty(t, partial.Failures)
	assert.Contains(t, partial.Failures[0].Path, "missing")
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
		want []int
	}{
		{"json", ".json", "[3, 1, 2]", []int{3, 1, 2}},
		{"yaml flow", ".yml", "[0, 1]", []int{0, 1}},
		{"yaml block", ".yaml", "- 4\n- 5\n", []int{4, 5}},
		{"lines", ".txt", "1\n\n 2 \n3 # three\n", []int{1, 2, 3}},
		{"no extension", "", "7", []int{7}},
		{"empty", ".txt", "", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabels(tt.ext, []byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLabels(".txt", []byte("1\n2.5\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = parseLabels(".json", []byte(`{"a": 1}`))
	assert.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitError, exitCode(errors.New("x")))
	assert.Equal(t, ExitConfigError, exitCode(configError(errors.New("x"))))
	assert.Equal(t, ExitDataError, exitCode(dataError(errors.New("x"))))
	assert.Nil(t, withCode(ExitDataError, nil))
	assert.Nil(t, reportedError(nil))
	assert.Equal(t, ExitError, exitCode(reportedError(errors.New("x"))))
	assert.True(t, isReported(reportedError(errors.New("x"))))
	assert.False(t, isReported(dataError(errors.New("x"))))

	inner := errors.New("inner")
	assert.ErrorIs(t, dataError(inner), inner)
}
