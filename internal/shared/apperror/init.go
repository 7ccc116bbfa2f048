package apperror

import (
	"reflect"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var exposeInternal atomic.Bool

// Init registers json field names on gin's validator. When development is
// true, ToHTTP includes the raw cause of internal errors in details.
func Init(development bool) {
	exposeInternal.Store(development)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}
