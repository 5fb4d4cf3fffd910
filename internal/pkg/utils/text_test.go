package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Hong Tra Dai Loan", StripDiacritics("Hồng Trà Đài Loan"))
	assert.Equal(t, "Thach Suong Sao", StripDiacritics("Thạch Sương Sáo"))
	assert.Equal(t, "plain", StripDiacritics("plain"))
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "tran chau duong den", FoldText("  Trân Châu Đường Đen "))
	assert.Equal(t, "台灣紅茶", FoldText("台灣紅茶"))
}
