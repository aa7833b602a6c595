package handler

type aiRequest struct {
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
	Code        string `json:"code"`
}

type aiResponse struct {
	Result string `json:"result"`
}
