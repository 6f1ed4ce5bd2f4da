// Package phone は発信先電話番号の正規化を提供する。
package phone

import (
	"strings"
	"unicode"
)

// DefaultCountryCode は国番号を含まない番号に付与する既定の国番号。
const DefaultCountryCode = "+61"

// Normalize は電話番号をDefaultCountryCodeを使って "+" 始まりの国際形式に変換する。
func Normalize(raw string) string {
	return NormalizeWith(raw, DefaultCountryCode)
}

// NormalizeWith は電話番号を指定した国番号で "+" 始まりの国際形式に変換する。
//
//  1. 空白・ハイフン・括弧を取り除く
//  2. 先頭の "0" は国番号に置き換える
//  3. "+" で始まらない場合は国番号を前置する
//  4. "+" で始まる場合はそのまま返す
//
// 形式の妥当性は検証しない。不正な番号は発信APIに拒否される。
func NormalizeWith(raw, countryCode string) string {
	n := strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, raw)

	switch {
	case strings.HasPrefix(n, "0"):
		return countryCode + n[1:]
	case !strings.HasPrefix(n, "+"):
		return countryCode + n
	default:
		return n
	}
}

// isSeparator は番号から除去する区切り文字かどうかを返す。
// BOM（U+FEFF）も空白として扱う。
func isSeparator(r rune) bool {
	switch r {
	case '-', '(', ')', '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}
