package cli

import (
	"testing"

	"github.com/diillson/aws-sso-manager-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
)

func TestParseAccountIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single quotes", "['111', '222']", []string{"111", "222"}, false},
		{"double quotes", `["111","222"]`, []string{"111", "222"}, false},
		{"mixed quotes", `['111', "222"]`, []string{"111", "222"}, false},
		{"duplicates kept", "['111', '111']", []string{"111", "111"}, false},
		{"not validated", "['abc']", []string{"abc"}, false},
		{"empty list", "[]", []string{}, false},
		{"tuple", `("111","222")`, []string{"111", "222"}, false},
		{"single element tuple", "('111',)", []string{"111"}, false},
		{"empty tuple", "()", []string{}, false},
		{"parenthesised string", "('111')", nil, true},
		{"tuple of numbers", "(111, 222)", nil, true},
		{"bare numbers", "[111, 222]", nil, true},
		{"bare words", "[abc]", nil, true},
		{"plain string", "'111'", nil, true},
		{"comma separated", "111,222", nil, true},
		{"unbalanced", "['111'", nil, true},
		{"nested list", "[['111']]", nil, true},
		{"block sequence", "- '111'\n- '222'\n", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAccountIDs(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrMalformedAccountIDs)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
