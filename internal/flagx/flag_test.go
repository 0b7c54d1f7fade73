package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-a", "https://example.org"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-a", "https://example.org"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-x", "1", "-y=2"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value stays alone",
			args:         []string{"-c", "-a", "https://example.org"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowedFlags)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"cli", "-c", "settings.json", "-a", "https://example.org"}
	assert.Equal(t, "settings.json", JsonConfigFlags())

	os.Args = []string{"cli", "-a", "https://example.org"}
	assert.Equal(t, "", JsonConfigFlags())
}
