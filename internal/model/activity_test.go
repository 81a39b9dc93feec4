package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestActivityHasCapacityFor(t *testing.T) {
	tests := []struct {
		name  string
		max   null.Int
		count int
		want  bool
	}{
		{"unlimited", null.Int{}, 1000, true},
		{"empty", null.IntFrom(2), 0, true},
		{"one slot left", null.IntFrom(2), 1, true},
		{"full", null.IntFrom(2), 2, false},
		{"over", null.IntFrom(2), 3, false},
		{"zero capacity", null.IntFrom(0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Activity{MaxParticipants: tt.max}
			assert.Equal(t, tt.want, a.HasCapacityFor(tt.count))
		})
	}
}

func TestActivityViewJSON(t *testing.T) {
	v := ActivityView{
		ID:           1,
		Name:         "Chess Club",
		Participants: []string{},
	}

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Chess Club","description":null,"schedule":null,"max_participants":null,"participants":[]}`, string(b))
}
