package clients

import (
	"testing"

	"github.com/emzola/libraryportal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Client(t *testing.T) {
	var cfg config.Config
	cfg.S3.Region = "eu-west-1"
	cfg.S3.AccessKeyID = "AKIDEXAMPLE"
	cfg.S3.SecretAccessKey = "secret"

	client, err := NewS3Client(cfg)
	require.NoError(t, err)
	assert.NotNil(t, client)
}
