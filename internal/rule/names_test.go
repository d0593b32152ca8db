package rule

import (
	"testing"

	"github.com/DjordjeVuckovic/rule-hunter/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
		wantErr    error
	}{
		{name: "single", expression: "public", want: []string{"public"}},
		{name: "dead branch is included", expression: "public or (private and static)", want: []string{"public", "private", "static"}},
		{name: "duplicates kept", expression: "A and !A", want: []string{"A", "A"}},
		{name: "syntax error", expression: "A or", wantErr: token.ErrUnexpectedEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Names(tt.expression)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
