// Package middleware はデモサーバーで使用するGinミドルウェアを提供する。
//
// 共通パスワードから導出したトークンによるアクセスゲート、
// リクエストIDの付与、パニックリカバリを含む。
package middleware
