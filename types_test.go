package dbtypes_test

import (
	"testing"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   *dbtypes.Type
		family dbtypes.Family
	}{
		{"text", dbtypes.TypeText, dbtypes.FamilyText},
		{" integer ", dbtypes.TypeInteger, dbtypes.FamilyNumber},
		{"number", dbtypes.TypeNumber, dbtypes.FamilyNumber},
		{"boolean", dbtypes.TypeBoolean, dbtypes.FamilyBoolean},
		{"json", dbtypes.TypeJSON, dbtypes.FamilyJSON},
		{"text[]", dbtypes.ArrayOf(dbtypes.TypeText), dbtypes.FamilyJSON},
		{"integer[][]", dbtypes.ArrayOf(dbtypes.ArrayOf(dbtypes.TypeInteger)), dbtypes.FamilyJSON},
		{"quiz_status", dbtypes.NamedType("quiz_status"), dbtypes.FamilyText},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := dbtypes.ParseType(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.family, got.Family())

			again, err := dbtypes.ParseType(got.String())
			require.NoError(t, err)
			assert.True(t, got.Equal(again))
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	t.Parallel()

	_, err := dbtypes.ParseType("  ")
	require.ErrorIs(t, err, dbtypes.ErrEmptyType)

	for _, in := range []string{"map[string]int", "1abc", "named", "array", "[]"} {
		_, err := dbtypes.ParseType(in)
		require.Error(t, err, in)
	}

	assert.Panics(t, func() { dbtypes.MustParseType("") })
}
