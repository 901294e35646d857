package logger

import (
	"testing"

	"github.com/helapesa/helapesa/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "info level", logLvl: "info"},
		{name: "debug level", logLvl: "debug"},
		{name: "error level", logLvl: "error"},
		{name: "unsupported level", logLvl: "trace", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
