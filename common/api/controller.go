package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const httpStatusCodeInternalError = 600

// Wrap adapts a controller to a gin handler. Results and business errors are written with HTTP 200 in a
// BusinessError envelope; binding and decoding failures become ErrValidation and anything else ErrInternal.
func Wrap(controller func(c *gin.Context) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := controller(c)
		if err != nil {
			switch e := err.(type) {
			case *BusinessError:
				c.JSON(http.StatusOK, e)
			case validator.ValidationErrors, *json.SyntaxError, *json.UnmarshalTypeError:
				c.JSON(http.StatusOK, ErrValidation.WithData(e.Error()))
			default:
				c.JSON(httpStatusCodeInternalError, ErrInternal.WithData(e.Error()))
			}
		} else if result == nil {
			c.JSON(http.StatusOK, ErrNil)
		} else {
			c.JSON(http.StatusOK, ErrNil.WithData(result))
		}
	}
}
