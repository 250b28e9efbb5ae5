package pathtype

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantSeparators(t *testing.T) {
	t.Parallel()

	assert.Equal(t, byte('/'), Common.Separator())
	assert.Equal(t, byte('\\'), Windows.Separator())

	assert.True(t, Common.IsSeparator('/'))
	assert.False(t, Common.IsSeparator('\\'))
	assert.True(t, Windows.IsSeparator('/'))
	assert.True(t, Windows.IsSeparator('\\'))
	assert.False(t, Windows.IsSeparator(':'))
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		native  Variant
		want    Variant
		wantErr bool
	}{
		{name: "common", input: "common", want: Common},
		{name: "posix alias", input: "POSIX", want: Common},
		{name: "unix alias", input: " unix ", want: Common},
		{name: "windows", input: "Windows", want: Windows},
		{name: "native common", input: "native", native: Common, want: Common},
		{name: "native windows", input: "native", native: Windows, want: Windows},
		{name: "empty is native", input: "", native: Windows, want: Windows},
		{name: "unknown", input: "plan9", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVariant(tt.input, tt.native)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownVariant)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVariantText(t *testing.T) {
	t.Parallel()

	type config struct {
		Variant Variant `json:"variant"`
	}

	data, err := json.Marshal(config{Variant: Windows})
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"windows"}`, string(data))

	var cfg config
	require.NoError(t, json.Unmarshal([]byte(`{"variant":"common"}`), &cfg))
	assert.Equal(t, Common, cfg.Variant)

	err = json.Unmarshal([]byte(`{"variant":"native"}`), &cfg)
	require.ErrorIs(t, err, ErrUnknownVariant)

	_, err = Variant(7).MarshalText()
	require.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, "variant(7)", Variant(7).String())
}
