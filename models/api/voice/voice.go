package voiceapimodels

type ProcessResponse struct {
	Transcription string `json:"transcription"`
	Response      string `json:"response"`
}
