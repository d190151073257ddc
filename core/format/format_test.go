package format_test

import (
	"fmt"
	"testing"
	"time"

	"common-utils/core/format"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0bytes"},
		{1, "1byte"},
		{64, "64bytes"},
		{1024, "1024bytes"},
		{1025, "1.00KiB"},
		{1234, "1.21KiB"},
		{56789, "55.46KiB"},
		{1234567, "1.18MiB"},
		{8901234567, "8.29GiB"},
		{8901234567890, "8.10TiB"},
		{12345678901234567, "10.97PiB"},
		{9223372036854775807, "8192.00PiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, format.BinarySize(tt.size))
		})
	}
}

func TestBinarySize_WholeBytes(t *testing.T) {
	for n := int64(2); n <= format.BinaryBase; n++ {
		assert.Equal(t, fmt.Sprintf("%dbytes", n), format.BinarySize(n))
	}
}

func TestDecimalSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0bytes"},
		{1, "1byte"},
		{64, "64bytes"},
		{1000, "1000bytes"},
		{1234, "1.23KB"},
		{56789, "56.79KB"},
		{1234567, "1.23MB"},
		{8901234567, "8.90GB"},
		{8901234567890, "8.90TB"},
		{12345678901234567, "12.35PB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, format.DecimalSize(tt.size))
		})
	}
}

func TestSize(t *testing.T) {
	assert.Equal(t, "1.21KiB", format.Size(1234, false))
	assert.Equal(t, "1.23KB", format.Size(1234, true))
}

func TestTimeIn(t *testing.T) {
	const nanos = 1565656565656565656

	t.Run("UTC", func(t *testing.T) {
		assert.Equal(t, "2019-08-13 00:36:05", format.TimeIn(nanos, time.UTC))
	})

	t.Run("Pacific", func(t *testing.T) {
		pdt := time.FixedZone("PDT", -7*60*60)
		assert.Equal(t, "2019-08-12 17:36:05", format.TimeIn(nanos, pdt))
	})

	t.Run("Epoch", func(t *testing.T) {
		assert.Equal(t, "1970-01-01 00:00:00", format.TimeIn(999999, time.UTC))
	})

	t.Run("NilIsLocal", func(t *testing.T) {
		assert.Equal(t, format.Time(nanos), format.TimeIn(nanos, nil))
	})
}

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		amount   int64
		want     string
	}{
		{"Free", "usd", 0, "Free"},
		{"FreeUnknownCurrency", "eur", 0, "Free"},
		{"Cents", "usd", 64, "$0.64"},
		{"Dollars", "usd", 1234, "$12.34"},
		{"Hundreds", "usd", 56789, "$567.89"},
		{"Thousands", "usd", 1234567, "$12345.67"},
		{"Millions", "usd", 8901234567, "$89012345.67"},
		{"TrailingZero", "usd", 8901234567890, "$89012345678.9"},
		{"OneDecimal", "usd", 1230, "$12.3"},
		{"Whole", "usd", 1200, "$12"},
		{"WholeTens", "usd", 1000, "$10"},
		{"BeyondFloatPrecision", "usd", 9007199254740993, "$90071992547409.93"},
		{"MaxInt64", "usd", 9223372036854775807, "$92233720368547758.07"},
		{"Negative", "usd", -64, "-$0.64"},
		{"NegativeWhole", "usd", -1200, "-$12"},
		{"MinInt64", "usd", -9223372036854775808, "-$92233720368547758.08"},
		{"UnknownCurrency", "eur", 100, "?"},
		{"CaseSensitive", "USD", 100, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Money(tt.currency, tt.amount))
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"hello world", "Hello world"},
		{"h", "H"},
		{"1abc", "1abc"},
		{"élan", "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Capitalize(tt.in))
		})
	}
}

func TestConfig_Location(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		loc, err := format.Config{}.Location()
		require.NoError(t, err)
		assert.Equal(t, time.Local, loc)
	})

	t.Run("UTC", func(t *testing.T) {
		loc, err := format.Config{Timezone: "UTC"}.Location()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := format.Config{Timezone: "Not/AZone"}.Location()
		assert.Error(t, err)
	})
}
