package api

// General errors
var (
	ErrNil        = NewBusinessError(0, "Success")
	ErrValidation = NewBusinessError(1, "Invalid parameter")
	ErrInternal   = NewBusinessError(2, "Internal server error")
)

// BusinessError is the JSON envelope of every API response. Code 0 means success.
type BusinessError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{code, message, nil}
}

func (err *BusinessError) Error() string {
	return err.Message
}

// WithData returns a copy of err carrying data.
func (err *BusinessError) WithData(data interface{}) *BusinessError {
	return &BusinessError{err.Code, err.Message, data}
}
