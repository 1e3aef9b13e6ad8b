package response

type Msg struct {
	Message string `json:"message"`
}

// Token is the login payload: the bearer token travels in data.
type Token struct {
	Data    string `json:"data"`
	Message string `json:"message"`
}

func Message(msg string) Msg { return Msg{Message: msg} }

// Error builds an error body; an empty customMsg uses the status default.
func Error(status int, customMsg string) Msg {
	msg := StatusMsgMap[status]
	if customMsg != "" {
		msg = customMsg
	}
	return Msg{Message: msg}
}
