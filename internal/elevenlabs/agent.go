package elevenlabs

// Agent はエージェント作成APIのリクエスト。
type Agent struct {
	Name               string             `json:"name"`
	ConversationConfig ConversationConfig `json:"conversation_config"`
}

// ConversationConfig はエージェントの会話設定。
type ConversationConfig struct {
	Agent        AgentSettings        `json:"agent"`
	TTS          TTSSettings          `json:"tts"`
	ASR          ASRSettings          `json:"asr"`
	Turn         TurnSettings         `json:"turn"`
	Conversation ConversationSettings `json:"conversation"`
}

// AgentSettings はエージェントの振る舞いの設定。
type AgentSettings struct {
	FirstMessage string         `json:"first_message"`
	Language     string         `json:"language"`
	Prompt       PromptSettings `json:"prompt"`
}

// PromptSettings はLLMのプロンプト設定。
type PromptSettings struct {
	Prompt      string  `json:"prompt"`
	LLM         string  `json:"llm"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// TTSSettings は音声合成の設定。
type TTSSettings struct {
	ModelID                string  `json:"model_id"`
	VoiceID                string  `json:"voice_id"`
	AgentOutputAudioFormat string  `json:"agent_output_audio_format"`
	Stability              float64 `json:"stability"`
	Speed                  float64 `json:"speed"`
	SimilarityBoost        float64 `json:"similarity_boost"`
}

// ASRSettings は音声認識の設定。
type ASRSettings struct {
	Quality              string `json:"quality"`
	Provider             string `json:"provider"`
	UserInputAudioFormat string `json:"user_input_audio_format"`
}

// TurnSettings は発話ターンの設定。
type TurnSettings struct {
	TurnTimeout int `json:"turn_timeout"`
}

// ConversationSettings は会話全体の設定。
type ConversationSettings struct {
	MaxDurationSeconds int `json:"max_duration_seconds"`
}

// PhoneNumberImport は電話番号インポートAPIのリクエスト。
type PhoneNumberImport struct {
	// Provider は電話番号の提供元。現在は "twilio" のみ。
	Provider    string `json:"provider"`
	PhoneNumber string `json:"phone_number"`
	Label       string `json:"label"`
	// SID はTwilioのアカウントSID。
	SID string `json:"sid"`
	// Token はTwilioの認証トークン。
	Token   string `json:"token"`
	AgentID string `json:"agent_id"`
}
