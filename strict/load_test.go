package strict_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strict-record/strict"
)

type Service struct {
	Name     string        `strict:"name,required"`
	Replicas int           `strict:"replicas"`
	Enabled  bool          `strict:"enabled"`
	Timeout  time.Duration `strict:"timeout"`
	Ports    []int         `strict:"ports"`
	Owner    Owner         `strict:"owner"`
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	services := strict.MustDefine[Service]()

	want := Service{
		Name:     "billing",
		Replicas: 3,
		Enabled:  true,
		Timeout:  90 * time.Second,
		Ports:    []int{8080, 8443},
		Owner:    Owner{Name: "ann", Email: "ann@example.com"},
	}

	for _, name := range []string{"service.yaml", "service.json"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s, err := services.LoadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, want, s)
		})
	}

	t.Run("positional", func(t *testing.T) {
		t.Parallel()

		s, err := services.LoadFile(filepath.Join("testdata", "service_list.yml"))
		require.NoError(t, err)
		assert.Equal(t, Service{Name: "billing", Replicas: 3, Timeout: 2 * time.Second}, s)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := services.LoadFile(filepath.Join("testdata", "service.toml"))
		require.ErrorIs(t, err, strict.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := services.LoadFile(filepath.Join("testdata", "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	services := strict.MustDefine[Service]()

	_, err := services.FromYAML([]byte("just a string"))
	require.ErrorIs(t, err, strict.ErrNotDocument)

	_, err = services.FromYAML([]byte("name: [unclosed"))
	require.Error(t, err)

	_, err = services.FromYAML(nil)
	require.ErrorIs(t, err, strict.ErrMissingField)

	_, err = services.FromYAML([]byte("name: billing\nreplicas: many\n"))

	var castErr *strict.CastError
	require.ErrorAs(t, err, &castErr)
	assert.Equal(t, "replicas", castErr.Field)
	assert.Equal(t, "many", castErr.Value)
}

func TestFromJSON(t *testing.T) {
	t.Parallel()

	services := strict.MustDefine[Service]()

	s, err := services.FromJSON([]byte(`{"name": "api", "replicas": 12, "ports": [80]}`))
	require.NoError(t, err)
	assert.Equal(t, Service{Name: "api", Replicas: 12, Ports: []int{80}}, s)

	_, err = services.FromJSON([]byte(`42`))
	require.ErrorIs(t, err, strict.ErrNotDocument)

	fromJSON, err := services.FromJSON([]byte(`{"name": "api", "replicas": 1.5, "timeout": 5}`))
	require.NoError(t, err)

	fromYAML, err := services.FromYAML([]byte("name: api\nreplicas: 1.5\ntimeout: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, fromJSON.Replicas)
	assert.Equal(t, 5*time.Nanosecond, fromJSON.Timeout)
	assert.Equal(t, fromYAML, fromJSON)

	s, err = services.FromJSON([]byte(`{"name": "api", "replicas": 9007199254740993}`))
	require.NoError(t, err)
	assert.Equal(t, 9007199254740993, s.Replicas)

	_, err = services.FromJSON([]byte(`{"name": "api", "replicas": "1.5"}`))
	require.ErrorIs(t, err, strict.ErrNotCastable)

	_, err = services.FromJSON([]byte(`{"name": "a"} trailing-garbage`))
	require.ErrorIs(t, err, strict.ErrTrailingData)

	_, err = services.FromJSON([]byte(`{"name": "a"} {"name": "b"}`))
	require.ErrorIs(t, err, strict.ErrTrailingData)

	s, err = services.FromJSON([]byte("{\"name\": \"a\"}\n  \n"))
	require.NoError(t, err)
	assert.Equal(t, "a", s.Name)

	_, err = services.FromJSON([]byte(`{"name": "api", "colour": "red"}`))
	require.ErrorIs(t, err, strict.ErrUnknownField)

	_, err = services.FromJSON([]byte(`{`))
	require.Error(t, err)
}
