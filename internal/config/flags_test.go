package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{
			name:     "localhost with port",
			input:    "localhost:8080",
			wantHost: "localhost",
			wantPort: 8080,
		},
		{
			name:     "ip with port",
			input:    "127.0.0.1:9090",
			wantHost: "127.0.0.1",
			wantPort: 9090,
		},
		{
			name:     "all interfaces",
			input:    "0.0.0.0:80",
			wantHost: "0.0.0.0",
			wantPort: 80,
		},
		{
			name:    "missing port",
			input:   "localhost",
			wantErr: true,
		},
		{
			name:    "non-numeric port",
			input:   "localhost:abc",
			wantErr: true,
		},
		{
			name:    "zero port",
			input:   "localhost:0",
			wantErr: true,
		},
		{
			name:    "negative port",
			input:   "localhost:-1",
			wantErr: true,
		},
		{
			name:    "invalid host",
			input:   "not-an-ip:8080",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	addr := NetAddress{Host: "localhost", Port: 8080}
	assert.Equal(t, "localhost:8080", addr.String())

	// zero-value address renders empty so mergo treats it as unset
	var empty NetAddress
	assert.Equal(t, "", empty.String())
}
