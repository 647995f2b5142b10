package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocations(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "exact match case-insensitive",
			in:   []string{"goa", "ALIBAUG"},
			want: []string{"Goa", "Alibaug"},
		},
		{
			name: "comma-joined values flattened",
			in:   []string{"goa, lonavala", "karjat"},
			want: []string{"Goa", "Lonavala", "Karjat"},
		},
		{
			name: "typos within threshold",
			in:   []string{"gooa", "alibag", "mussourie"},
			want: []string{"Goa", "Alibaug", "Mussoorie"},
		},
		{
			name: "garbage beyond threshold dropped",
			in:   []string{"mumbai", "goa"},
			want: []string{"Goa"},
		},
		{
			name: "deduplicated in input order",
			in:   []string{"goa", "Goa", "gooa"},
			want: []string{"Goa"},
		},
		{
			name: "blank tokens skipped",
			in:   []string{" , goa , "},
			want: []string{"Goa"},
		},
		{
			name: "nothing resolvable",
			in:   []string{"paris", "london"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocations(tt.in))
		})
	}
}
