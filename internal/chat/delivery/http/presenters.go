package http

import "daily-task-manager/internal/chat"

type askReq struct {
	Message string `json:"message"`
}

func (r askReq) toInput() chat.AskInput {
	return chat.AskInput{Message: r.Message}
}

type askResp struct {
	Answer string `json:"answer"`
}

// errorResp is the flat error shape chat clients read.
type errorResp struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
