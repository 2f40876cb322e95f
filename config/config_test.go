package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, "gallery", cfg.MinIOSigner.Bucket)
	require.Equal(t, int64(20971520), cfg.MinIOSigner.StyleThreshold)
}
