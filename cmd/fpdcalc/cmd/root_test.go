package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/govalues/fpdecimal"
	"github.com/govalues/fpdecimal/internal/calc"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&stderr)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fpdcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestEval_Text(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1.23 4.56 + 10 *"}, "57.9\n"},
		{[]string{"eval", "1.23", "4.56", "+", "10", "*"}, "57.9\n"},
		{[]string{"eval", "2", "sqrt"}, "1.414213562373095048\n"},
		{[]string{"eval", "-p", "4", "2", "sqrt"}, "1.4142\n"},
		{[]string{"eval", "-p", "2", "--", "-2.5", "3", "pow"}, "-15.62\n"},
		{[]string{"eval", "--places", "3", "5"}, "5.000\n"},
		{[]string{"eval", "-v", "8 2 log"}, "3\n"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, got, "%v", tt.args)
	}
}

func TestEval_JSON(t *testing.T) {
	got, err := run(t, "eval", "-o", "json", "2 sqrt")
	require.NoError(t, err)
	assert.JSONEq(t, `{"expression":"2 sqrt","result":"1.414213562373095048"}`, got)
}

func TestEval_YAML(t *testing.T) {
	got, err := run(t, "eval", "-o", "yaml", "-p", "2", "1", "3", "/")
	require.NoError(t, err)

	var res result
	require.NoError(t, yaml.Unmarshal([]byte(got), &res))
	assert.Equal(t, "1 3 /", res.Expression)
	assert.Equal(t, fpdecimal.MustParse("0.33"), res.Result)
}

func TestEval_Config(t *testing.T) {
	path := writeConfig(t, "output: json\nplaces: 3\n")

	got, err := run(t, "eval", "--config", path, "1 3 /")
	require.NoError(t, err)
	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(got), &res))
	assert.Equal(t, "0.333", res["result"])

	got, err = run(t, "eval", "--config", path, "-o", "text", "-p", "1", "1 3 /")
	require.NoError(t, err)
	assert.Equal(t, "0.3\n", got)
}

func TestEval_Env(t *testing.T) {
	t.Setenv("FPDCALC_PLACES", "5")
	got, err := run(t, "eval", "2 3 /")
	require.NoError(t, err)
	assert.Equal(t, "0.66667\n", got)
}

func TestEval_Error(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		tests := [][]string{
			{"eval", "-o", "xml", "1"},
			{"eval", "-p", "19", "1"},
			{"eval", "--places=-2", "1"},
			{"eval", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1"},
			{"eval", "--config", writeConfig(t, "output: [1, 2"), "1"},
		}
		for _, tt := range tests {
			_, err := run(t, tt...)
			assert.True(t, Error.Has(err), "%v: %v", tt, err)
		}
	})

	t.Run("expression", func(t *testing.T) {
		tests := [][]string{
			{"eval", "1 +"},
			{"eval", "1 2"},
			{"eval", "1 0 /"},
			{"eval", "0 ln"},
		}
		for _, tt := range tests {
			_, err := run(t, tt...)
			assert.True(t, calc.Error.Has(err), "%v: %v", tt, err)
		}
	})

	t.Run("args", func(t *testing.T) {
		_, err := run(t, "eval")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	got, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, got, "fpdcalc v"+Version)
	assert.Contains(t, got, "Go Version:")
}
