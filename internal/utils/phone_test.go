package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"11987654321", "+5511987654321"},
		{"1133334444", "+551133334444"},
		{"(11) 98765-4321", "+5511987654321"},
		{"+5511987654321", "+5511987654321"},
		{"+1 415 555 0100", "+14155550100"},
		{"5511987654321", "+5511987654321"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhone(tc.in), "input %q", tc.in)
	}
}
