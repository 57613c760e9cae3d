package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "go", want: "%go%"},
		{in: "100%", want: `%100\%%`},
		{in: "snake_case", want: `%snake\_case%`},
		{in: `C:\temp`, want: `%C:\\temp%`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, containsPattern(tt.in))
		})
	}
}

func TestJobFilterWhereEscapesQuery(t *testing.T) {
	where, args := JobFilter{Query: "50%"}.where()
	require.Contains(t, where, `ESCAPE '\'`)
	require.Equal(t, []any{`%50\%%`}, args)
}
