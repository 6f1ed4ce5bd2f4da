// Package token はサイト共通パスワードから認証Cookie用トークンを導出する。
//
// トークンはパスワードのみから決まる決定的な値であり、プロセスの
// 起動時に一度だけ計算する。セッションごとの一意性や失効は持たない。
package token

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// keyLength はHMAC鍵として使うSHA-256ダイジェスト（16進）の文字数。
const keyLength = 32

// Derive はパスワードから認証トークンを導出する。
// 鍵はパスワードのSHA-256ダイジェスト（16進）の先頭32文字で、
// トークンはその鍵によるパスワードのHMAC-SHA256（16進）である。
func Derive(secret string) (string, error) {
	digest := sha256.Sum256([]byte(secret))
	key := hex.EncodeToString(digest[:])[:keyLength]

	sig, err := jwt.SigningMethodHS256.Sign(secret, []byte(key))
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗: %w", err)
	}
	return hex.EncodeToString(sig), nil
}

// Equal は提示された値がトークンと一致するかを定数時間で比較する。
func Equal(presented, token string) bool {
	if token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1
}
