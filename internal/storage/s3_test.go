package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"masgolf/config"
)

func TestObjectURL(t *testing.T) {
	aws := config.S3Config{Endpoint: "s3.ap-northeast-2.amazonaws.com", Region: "ap-northeast-2", Bucket: "masgolf", UseSSL: true}
	assert.Equal(t,
		"https://masgolf.s3.ap-northeast-2.amazonaws.com/availability/next-available.json",
		ObjectURL(aws, "availability/next-available.json"),
	)

	local := config.S3Config{Endpoint: "localhost:9000", Bucket: "masgolf", UseSSL: false}
	assert.Equal(t, "http://localhost:9000/masgolf/a.json", ObjectURL(local, "a.json"))
}
