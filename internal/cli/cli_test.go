package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/showroom/internal/logging"
	"github.com/Makepad-fr/showroom/internal/model"
	"github.com/Makepad-fr/showroom/internal/ui"
)

type result struct {
	out  string
	err  error
	cars []model.Car
	ran  bool
	opts *Options
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(logging.LogLevelEnvVar, "")
	t.Cleanup(func() { _ = ui.SetTheme("auto") })

	var res result
	res.opts = &Options{runScreen: func(cars []model.Car, theme ui.Theme) error {
		res.ran = true
		res.cars = cars
		return nil
	}}
	root := NewRootCmd(res.opts)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	res.err = root.Execute()
	res.out = buf.String()
	return res
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestRootStartsScreenWithBuiltinCatalog(t *testing.T) {
	res := run(t)
	require.NoError(t, res.err)
	assert.True(t, res.ran)
	assert.NotEmpty(t, res.cars)
}

func TestRootRejectsBadCatalogBeforeScreen(t *testing.T) {
	bad := writeFile(t, "cars.yaml", "- name: Bare\n  price: Rp 0\n")
	res := run(t, "--data", bad)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "no detail images")
	assert.False(t, res.ran)
}

func TestRootRejectsUnknownTheme(t *testing.T) {
	res := run(t, "--theme", "sepia")
	assert.ErrorContains(t, res.err, "unknown theme")
	assert.False(t, res.ran)
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	cars := writeFile(t, "cars.json", `[{"name": "Kei", "price": "Rp 1", "icon": "kei", "detail_images": ["k1"]}]`)
	cfg := writeFile(t, "config.yaml", "theme: dark\ndata: "+cars+"\n")

	res := run(t, "--config", cfg)
	require.NoError(t, res.err)
	require.Len(t, res.cars, 1)
	assert.Equal(t, "Kei", res.cars[0].Name)
	assert.Equal(t, "dark", res.opts.Theme)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "theme: dark\n")
	res := run(t, "--config", cfg, "--theme", "light")
	require.NoError(t, res.err)
	assert.Equal(t, "light", res.opts.Theme)
}

func TestList(t *testing.T) {
	res := run(t, "ls")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Car Showroom")
	assert.Contains(t, res.out, "Toyota Fortuner")
	assert.Contains(t, res.out, "Rp 568.000.000")
	assert.False(t, res.ran)
}

func TestShow(t *testing.T) {
	res := run(t, "show", "1", "--image", "2")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Toyota Fortuner")
	assert.Contains(t, res.out, "fortuner_side")
	assert.Contains(t, res.out, "2 / 3")
}

func TestShowErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"show", "x"}, "not a number"},
		{[]string{"show", "0"}, "index out of range"},
		{[]string{"show", "99"}, "index out of range"},
		{[]string{"show", "1", "--image", "4"}, "image out of range"},
		{[]string{"show", "1", "--image", "0"}, "image out of range"},
	}
	for _, tt := range tests {
		res := run(t, tt.args...)
		assert.ErrorContains(t, res.err, tt.want, tt.args)
	}
}

func TestValidate(t *testing.T) {
	res := run(t, "validate")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "built-in catalog")

	good := writeFile(t, "good.yaml", "- name: A\n  detail_images: [a]\n")
	res = run(t, "validate", good)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "1 cars")

	bad := writeFile(t, "bad.yaml", "- name: A\n- price: Rp 2\n  detail_images: [b]\n")
	res = run(t, "validate", bad)
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "row 1 (A): car has no detail images")
	assert.Contains(t, res.err.Error(), "row 2: car has no name")
}

func TestVersion(t *testing.T) {
	res := run(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "showroom ")
}

func TestExecuteExitCodes(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, Execute([]string{"version"}, &out, &errOut))
	assert.Equal(t, 1, Execute([]string{"show", "nope"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "not a number")
}
