package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-a", "http://localhost:9090", "-p", "5", "-t", "2", "-d", "alt.db"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://localhost:9090", c.ServerBaseURL)
	assert.Equal(t, 5*time.Second, c.PollInterval)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
	assert.Equal(t, "alt.db", c.DatabasePath)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cli", "-x", "whatever", "-a", "http://localhost:9090"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, "http://localhost:9090", c.ServerBaseURL)
}
