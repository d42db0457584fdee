package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionDispatcher_Dispatch(t *testing.T) {
	ret := GetKeyDefinition("return_rental")
	require.NotNil(t, ret)
	quit := GetKeyDefinition("quit")
	require.NotNil(t, quit)

	tests := []struct {
		name     string
		selected string
		def      KeyDefinition
		want     any
	}{
		{name: "plain action", def: *quit, want: QuitMsg{}},
		{name: "row action with selection", selected: "r1", def: *ret, want: ReturnRentalMsg{RentalID: "r1"}},
		{name: "row action without selection", def: *ret, want: nil},
		{name: "no message", def: KeyDefinition{Name: "back"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewActionDispatcher(tt.selected).Dispatch(tt.def)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
