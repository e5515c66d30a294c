package defaultvalue

import (
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	CodeRequiresModel        = "DEFAULT_REQUIRES_MODEL"
	CodeInvalidArgument      = "DEFAULT_INVALID_ARGUMENT"
	CodeUnsupportedFieldType = "DEFAULT_UNSUPPORTED_FIELD_TYPE"
	CodeValueMismatch        = "DEFAULT_VALUE_MISMATCH"
)

// ErrNoScalarValidator is returned when a field resolves to a scalar nobody
// taught the transformer to validate. It is a configuration gap, not a schema
// author mistake.
var ErrNoScalarValidator = errors.New("no validator registered for scalar")

func invalidDirectiveErrorf(pos *ast.Position, code string, format string, args ...interface{}) *gqlerror.Error {
	var gErr *gqlerror.Error
	if pos != nil && pos.Src != nil {
		gErr = gqlerror.ErrorPosf(pos, format, args...)
	} else {
		gErr = gqlerror.Errorf(format, args...)
	}
	if gErr.Extensions == nil {
		gErr.Extensions = make(map[string]interface{})
	}
	gErr.Extensions["code"] = code
	gErr.Extensions["directive"] = directiveName
	return gErr
}

// IsInvalidDirective reports whether err is a schema validation error raised by @default.
func IsInvalidDirective(err error) bool {
	return ErrorCode(err) != ""
}

// ErrorCode returns the extension code of a @default validation error, or "".
func ErrorCode(err error) string {
	var gErr *gqlerror.Error
	if !errors.As(err, &gErr) {
		return ""
	}
	if gErr.Extensions["directive"] != directiveName {
		return ""
	}
	code, _ := gErr.Extensions["code"].(string)
	return code
}
