package chat

type AskInput struct {
	Message string
}

type AskOutput struct {
	Answer string
}
