package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sunset42ridge", false},
		{"too short", "Ab1", true},
		{"no upper", "sunset42ridge", true},
		{"no lower", "SUNSET42RIDGE", true},
		{"no digit", "SunsetRidgeRoad", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
