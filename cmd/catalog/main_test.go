package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteList(t *testing.T) {
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"route:list"})

	require.NoError(t, root.Execute())

	for _, want := range []string{
		"products.index", "products.store", "products.update", "products.destroy",
		"/api/products/{id}", "/static/*", "/healthz", "/metrics",
	} {
		assert.Contains(t, out.String(), want)
	}
}

func TestSeedCommand(t *testing.T) {
	t.Setenv("DATABASE_DSN", t.TempDir()+"/seed.db")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"seed"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Running seeder: products")
	assert.Contains(t, out.String(), "Seeding complete.")
}
