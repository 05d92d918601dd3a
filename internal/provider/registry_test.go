package provider

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/common"
)

func newRegistry(t *testing.T, cfg common.ProvidersConfig) *Registry {
	t.Helper()
	return NewRegistry(cfg, RetryPolicy{}, 1, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistryAvailableListsConfigured(t *testing.T) {
	r := newRegistry(t, common.ProvidersConfig{
		OpenAIKey:    "sk-test",
		DeepInfraKey: "di-test",
	})

	got := r.Available()
	assert.Equal(t, []constants.Provider{
		constants.ProviderOpenAI,
		constants.ProviderDeepInfra,
		constants.ProviderHybrid,
	}, got)
}

func TestRegistryAvailableSingleKey(t *testing.T) {
	r := newRegistry(t, common.ProvidersConfig{OpenAIKey: "sk-test"})

	// Hybrid needs both halves, so only OpenAI is usable.
	assert.Equal(t, []constants.Provider{constants.ProviderOpenAI}, r.Available())

	_, err := r.Get(constants.ProviderDeepInfra)
	require.Error(t, err)
}
