// Package server はアウトバウンド発信デモのHTTPサーバーを提供する。
//
// サイト全体を共通パスワードのCookieで保護し、認証済みのクライアントに
// 静的ファイルと発信API（POST /api/call）を提供する。発信APIは電話番号を
// 正規化してElevenLabsのTwilio連携発信APIに転送し、結果をそのまま返す。
// 状態は起動時に導出した認証トークンのみで、永続化は行わない。
package server
