// Package cookie はCookieヘッダーの解析を提供する。
package cookie

import "strings"

// Parse は生のCookieヘッダー文字列を名前と値のマップに変換する。
//
// ";" で区切った各要素の前後の空白を除去し、最初の "=" で名前と値に分割する。
// 値には "=" を含んでよい。名前が空になる要素は無視する。
// "=" を含まない要素は値が空文字列の名前として扱う。
// 同じ名前が複数ある場合は後のものが優先される。
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	for _, segment := range strings.Split(header, ";") {
		segment = strings.TrimSpace(segment)
		name, value, _ := strings.Cut(segment, "=")
		if name == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies
}
