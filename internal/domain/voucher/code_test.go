//go:build unit

package voucher_test

import (
	"testing"

	"hotel-voucher-api/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGeneratorFormat(t *testing.T) {
	cases := []struct {
		name      string
		hotelCode string
		width     int
		year      int
		seq       int64
		want      string
	}{
		{name: "ゼロ埋め4桁", hotelCode: "HPN", width: 4, year: 2025, seq: 1, want: "HPN-2025-0001"},
		{name: "連番42", hotelCode: "HPN", width: 4, year: 2025, seq: 42, want: "HPN-2025-0042"},
		{name: "桁あふれはそのまま伸びる", hotelCode: "HPN", width: 4, year: 2025, seq: 123456, want: "HPN-2025-123456"},
		{name: "幅6桁", hotelCode: "GRAND", width: 6, year: 2026, seq: 7, want: "GRAND-2026-000007"},
		{name: "幅0はデフォルト4桁", hotelCode: "HPN", width: 0, year: 2025, seq: 5, want: "HPN-2025-0005"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := voucher.NewCodeGenerator(tc.hotelCode, tc.width)
			assert.Equal(t, tc.want, g.Format(tc.year, tc.seq))
		})
	}
}

func TestParseCode(t *testing.T) {
	t.Run("発行形式をパースできる", func(t *testing.T) {
		hotel, year, seq, err := voucher.ParseCode("HPN-2025-0042")
		require.NoError(t, err)
		assert.Equal(t, "HPN", hotel)
		assert.Equal(t, 2025, year)
		assert.Equal(t, int64(42), seq)
	})

	t.Run("不正形式は拒否", func(t *testing.T) {
		cases := []struct {
			name string
			code string
		}{
			{"空文字", ""},
			{"区切りなし", "HPN20250042"},
			{"年が3桁", "HPN-202-0042"},
			{"連番が数字以外", "HPN-2025-00AB"},
			{"ホテルコードが小文字", "hpn-2025-0042"},
			{"余分なセグメント", "HPN-2025-0042-X"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, _, _, err := voucher.ParseCode(tc.code)
				assert.ErrorIs(t, err, voucher.ErrMalformedCode)
			})
		}
	})
}
