package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	t.Run("thousands separators", func(t *testing.T) {
		assert.Equal(t, "1,250,000 Birr", Currency(1250000))
	})

	t.Run("small amount", func(t *testing.T) {
		assert.Equal(t, "500 Birr", Currency(500))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "0 Birr", Currency(0))
	})

	t.Run("negative treated as zero", func(t *testing.T) {
		assert.Equal(t, "0 Birr", Currency(-10))
	})

	t.Run("nan treated as zero", func(t *testing.T) {
		assert.Equal(t, "0 Birr", Currency(math.NaN()))
	})
}

func TestTelHref(t *testing.T) {
	t.Run("strips formatting characters", func(t *testing.T) {
		assert.Equal(t, "tel:+251911223344", TelHref("+251 (91) 122-33-44"))
	})

	t.Run("plain digits", func(t *testing.T) {
		assert.Equal(t, "tel:0911223344", TelHref("0911223344"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", TelHref(""))
	})

	t.Run("no dialable characters", func(t *testing.T) {
		assert.Equal(t, "", TelHref("call me"))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abcde", Truncate("abcdefgh", 5))
}
