package presets

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/litechart/pkg/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetMap(t *testing.T) {
	t.Helper()
	old := Map
	Map = map[string]string{}
	setDefaults()
	t.Cleanup(func() { Map = old })
}

func TestSystemPresets(t *testing.T) {
	resetMap(t)
	for _, name := range []string{"Monthly sales", "Market share", "Daily visits", "Response time"} {
		cfg, err := Get(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, cfg.Data, name)
		_, err = chart.New(cfg)
		assert.NoError(t, err, name)
	}

	assert.ErrorIs(t, Set("market SHARE", chart.Config{Data: []float64{1}}), ErrSystemPreset)
	assert.ErrorIs(t, Delete("Monthly sales"), ErrSystemPreset)
	_, err := Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetGetDelete(t *testing.T) {
	resetMap(t)
	want := chart.Config{Data: []float64{4, 8, 15}, Type: "bar", Colors: []string{"tomato"}, BarGap: 4}
	require.NoError(t, Set("mine", want))
	assert.Contains(t, Names(), "mine")

	got, err := Get("mine")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, Delete("mine"))
	assert.NotContains(t, Names(), "mine")
}

func TestSaveLoad(t *testing.T) {
	resetMap(t)
	app := test.NewTempApp(t)
	require.NoError(t, Set("saved", chart.Config{Data: []float64{1, 2}}))
	require.NoError(t, Save(app))

	Map = map[string]string{}
	require.NoError(t, Load(app))
	assert.Contains(t, Names(), "saved")
	assert.Contains(t, Names(), "Market share")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want map[string]chart.Config
	}{
		{
			name: "single json",
			file: "revenue.json",
			body: `{"data":[10,20,30,40],"type":"bar"}`,
			want: map[string]chart.Config{"revenue": {Data: []float64{10, 20, 30, 40}, Type: "bar"}},
		},
		{
			name: "named json",
			file: "set.json",
			body: `{"a":{"data":[1]},"b":{"data":[1,1,2],"type":"pie"}}`,
			want: map[string]chart.Config{
				"a": {Data: []float64{1}},
				"b": {Data: []float64{1, 1, 2}, Type: "pie"},
			},
		},
		{
			name: "single yaml",
			file: "trend.yaml",
			body: "data: [3, 1, 4]\ntype: line\ncolors: ['#ff0000']\npointRadius: 3\n",
			want: map[string]chart.Config{"trend": {Data: []float64{3, 1, 4}, Type: "line", Colors: []string{"#ff0000"}, PointRadius: 3}},
		},
		{
			name: "named yml",
			file: "set.yml",
			body: "share:\n  data: [1, 2]\n  type: pie\n",
			want: map[string]chart.Config{"share": {Data: []float64{1, 2}, Type: "pie"}},
		},
		{
			name: "single toml",
			file: "dots.toml",
			body: "data = [5.5, 2.0, 8.0]\ntype = \"point\"\ngridDash = [2.0, 3.0]\n",
			want: map[string]chart.Config{"dots": {Data: []float64{5.5, 2, 8}, Type: "point", GridDash: []float64{2, 3}}},
		},
		{
			name: "named toml",
			file: "set.toml",
			body: "[sales]\ndata = [10.0, 20.0]\ntype = \"bar\"\n\n[share]\ndata = [1.0, 3.0]\ntype = \"pie\"\n",
			want: map[string]chart.Config{
				"sales": {Data: []float64{10, 20}, Type: "bar"},
				"share": {Data: []float64{1, 3}, Type: "pie"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadFile(writeFile(t, tt.file, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(writeFile(t, "chart.ini", "data=1"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, "bad.json", `{"data":[1],"typo":"bar"}`))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.yaml", "data: [1, 2\n"))
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	resetMap(t)
	names, err := Import(writeFile(t, "set.json", `{"b":{"data":[2]},"a":{"data":[1]}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	cfg, err := Get("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, cfg.Data)

	_, err = Import(writeFile(t, "sys.json", `{"c":{"data":[1]},"Market share":{"data":[1]}}`))
	assert.ErrorIs(t, err, ErrSystemPreset)
	assert.NotContains(t, Names(), "c")
}

func TestImportAllOrNothing(t *testing.T) {
	resetMap(t)
	before := Names()
	path := writeFile(t, "set.yaml", "a:\n  data: [1, 2]\nb:\n  data: [.nan]\nc:\n  data: [3]\n")

	_, err := Import(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, `"b"`)
	assert.Equal(t, before, Names())
}
