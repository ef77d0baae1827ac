package response

type EmailSentResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}
