package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(t *testing.T) map[string]any {
	t.Helper()
	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	return doc.Paths
}

func TestSetAPIPrefix(t *testing.T) {
	t.Cleanup(func() { SetAPIPrefix(DefaultAPIPrefix) })

	got := paths(t)
	assert.Contains(t, got, "/store-system/stores/")
	assert.Contains(t, got, "/store-system/purchases/{id}")
	assert.Contains(t, got, "/health")

	SetAPIPrefix("/api/v1")
	got = paths(t)
	assert.Contains(t, got, "/api/v1/stores/")
	assert.Contains(t, got, "/api/v1/customers/{id}")
	assert.NotContains(t, got, "/store-system/stores/")

	SetAPIPrefix("")
	got = paths(t)
	assert.Contains(t, got, "/products/")
	assert.Contains(t, got, "/healthz")
}

func TestDocumentCoversEveryEntity(t *testing.T) {
	got := paths(t)
	for _, entity := range []string{"stores", "store-inspections", "products", "product-arrivals", "customers", "purchases"} {
		assert.Contains(t, got, DefaultAPIPrefix+"/"+entity+"/", entity)
		assert.Contains(t, got, DefaultAPIPrefix+"/"+entity+"/{id}", entity)
	}
}
