// Package httpclient は外部APIとJSONでやり取りするHTTPクライアントを提供する。
//
// 固定ヘッダー（APIキー等）の付与、リクエストIDの伝播、2xx以外の
// ステータスを型付きエラー（*StatusError）として返す処理を共通化する。
package httpclient
