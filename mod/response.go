package mod

type ResponseValue struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type ResponseData struct {
	ResponseValue
	Data interface{} `json:"data,omitempty"`
}

const (
	ResponseCodeSuccess       = 1001
	ResponseCodeFailure       = 1002
	ResponseCodeMissingParams = 1003
	ResponseCodeInvalidParams = 1004
	ResponseCodeNotFound      = 1010

	// strict check failure categories, one per card.Check error kind
	ResponseCodeTypeNotAllowed  = 1021
	ResponseCodePatternMismatch = 1022
	ResponseCodeLengthMismatch  = 1023
	ResponseCodeLuhnFailed      = 1024
)
