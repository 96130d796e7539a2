package response

// Envelope is the uniform success shape: data for single results, count for
// lists, message for confirmations.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func OKMessage(message string) Envelope {
	return Envelope{Success: true, Message: message}
}

func OKList(data any, count int) Envelope {
	return Envelope{Success: true, Data: data, Count: &count}
}
