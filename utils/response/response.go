package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope; message is what the
// frontend shows as the toast text on both paths.
type Envelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Error      string      `json:"error,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

func FailWithError(c *gin.Context, status int, message string, err error) {
	env := Envelope{
		Success: false,
		Message: message,
	}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(status, env)
}

// FailWithSuggestion adds a remediation hint, used by the QR scan endpoint
// (e.g. "order already completed").
func FailWithSuggestion(c *gin.Context, status int, message, suggestion string) {
	c.JSON(status, Envelope{
		Success:    false,
		Message:    message,
		Suggestion: suggestion,
	})
}
