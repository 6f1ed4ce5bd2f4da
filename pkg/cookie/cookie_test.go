package cookie

import (
	"maps"
	"testing"
)

// TestParse はParse関数を検証する。
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "空のヘッダーは空のマップを返すこと",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "単一のCookieを解析できること",
			header: "auth=abc123",
			want:   map[string]string{"auth": "abc123"},
		},
		{
			name:   "複数のCookieを解析し前後の空白を除去すること",
			header: "theme=dark;  auth=abc123 ; lang=en",
			want:   map[string]string{"theme": "dark", "auth": "abc123", "lang": "en"},
		},
		{
			name:   "値に含まれる=を保持すること",
			header: "data=a=b==; auth=x",
			want:   map[string]string{"data": "a=b==", "auth": "x"},
		},
		{
			name:   "空の要素は無視すること",
			header: ";; auth=x;;",
			want:   map[string]string{"auth": "x"},
		},
		{
			name:   "名前が空の要素は無視すること",
			header: "=orphan; auth=x",
			want:   map[string]string{"auth": "x"},
		},
		{
			name:   "=を含まない要素は値が空になること",
			header: "flag; auth=x",
			want:   map[string]string{"flag": "", "auth": "x"},
		},
		{
			name:   "同名のCookieは後のものが優先されること",
			header: "auth=first; auth=second",
			want:   map[string]string{"auth": "second"},
		},
		{
			name:   "名前の大文字小文字を区別すること",
			header: "Auth=upper; auth=lower",
			want:   map[string]string{"Auth": "upper", "auth": "lower"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.header)
			if !maps.Equal(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}
