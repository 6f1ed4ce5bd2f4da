// Package elevenlabs はElevenLabs会話AI APIのクライアントを提供する。
//
// Twilio連携の発信API、エージェント作成API、電話番号インポートAPIを扱う。
// 2xx以外の応答は*APIErrorとして返し、ステータスとdetailを呼び出し側に伝える。
// レスポンスボディがJSONとして解釈できない場合は通信エラーと同様に扱う。
package elevenlabs
