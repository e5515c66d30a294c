package defaultvalue

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// ScalarKind is the name of a scalar a default value can be checked against.
type ScalarKind string

const (
	ScalarID           ScalarKind = "ID"
	ScalarString       ScalarKind = "String"
	ScalarBigInt       ScalarKind = "BigInt"
	ScalarInt          ScalarKind = "Int"
	ScalarDouble       ScalarKind = "Double"
	ScalarFloat        ScalarKind = "Float"
	ScalarBoolean      ScalarKind = "Boolean"
	ScalarAWSJSON      ScalarKind = "AWSJSON"
	ScalarAWSDate      ScalarKind = "AWSDate"
	ScalarAWSTime      ScalarKind = "AWSTime"
	ScalarAWSDateTime  ScalarKind = "AWSDateTime"
	ScalarAWSTimestamp ScalarKind = "AWSTimestamp"
	ScalarAWSEmail     ScalarKind = "AWSEmail"
	ScalarAWSURL       ScalarKind = "AWSURL"
	ScalarAWSPhone     ScalarKind = "AWSPhone"
	ScalarAWSIPAddress ScalarKind = "AWSIPAddress"
)

// The grammars are written for an ECMAScript engine; AWSDate needs lookahead
// and backreferences, which RE2 does not have.
var (
	boolRegex        = mustCompile(`^(true|false)$`, regexp2.IgnoreCase)
	awsDateRegex     = mustCompile(`^([+-]?\d{4}(?!\d{2}\b))((-?)((0[1-9]|1[0-2])(\3([12]\d|0[1-9]|3[01]))?|W([0-4]\d|5[0-2])(-?[1-7])?|(00[1-9]|0[1-9]\d|[12]\d{2}|3([0-5]\d|6[1-6])))([T\s]((([01]\d|2[0-3])((:?)[0-5]\d)?|24:?00)([.,]\d+(?!:))?)?(\17[0-5]\d([.,]\d+)?)?([zZ]|([+-])([01]\d|2[0-3]):?([0-5]\d)?)?)?)?(Z|[+-](?:2[0-3]|[01][0-9])(?::?(?:[0-5][0-9]))?)?$`, regexp2.None)
	awsTimeRegex     = mustCompile(`^(Z|[+-](?:2[0-3]|[01][0-9])(?::?(?:[0-5][0-9]))?)$`, regexp2.None)
	awsDateTimeRegex = mustCompile(`^(?:[1-9]\d{3}-(?:(?:0[1-9]|1[0-2])-(?:0[1-9]|1\d|2[0-8])|(?:0[13-9]|1[0-2])-(?:29|30)|(?:0[13578]|1[02])-31)|(?:[1-9]\d(?:0[48]|[2468][048]|[13579][26])|(?:[2468][048]|[13579][26])00)-02-29)T(?:[01]\d|2[0-3]):[0-5]\d:[0-5]\d(?:\.\d{1,9})?(?:Z|[+-][01]\d:[0-5]\d:[0-5]\d)$`, regexp2.None)
	awsEmailRegex    = mustCompile(`^(?:[a-z0-9!#$%&'*+/=?^_`+"`"+`{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_`+"`"+`{|}~-]+)*|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21\x23-\x5b\x5d-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*")@(?:(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?|\[(?:(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9]))\.){3}(?:(2(5[0-5]|[0-4][0-9])|1[0-9][0-9]|[1-9]?[0-9])|[a-z0-9-]*[a-z0-9]:(?:[\x01-\x08\x0b\x0c\x0e-\x1f\x21-\x5a\x53-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])+)\])$`, regexp2.None)
	awsURLRegex      = mustCompile(`^https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)$`, regexp2.None)
	awsPhoneRegex    = mustCompile(`^\+?\(?\d+\)?(\s|\-|\.)?\d{1,3}(\s|\-|\.)?\d{4}$`, regexp2.None)
	awsIPv4Regex     = mustCompile(`^(?:(([1]?\d)?\d|2[0-4]\d|25[0-5])\.){3}(([1]?\d)?\d|2[0-4]\d|25[0-5])$`, regexp2.None)
	awsIPv6Regex     = mustCompile(`^(?:(?:[\da-fA-F]{1,4}:){7}[\da-fA-F]{1,4}|(?:[\da-fA-F]{1,4}(?::[\da-fA-F]{1,4}){0,5})?::(?:[\da-fA-F]{1,4}(?::[\da-fA-F]{1,4}){0,5})?)$`, regexp2.None)
)

func mustCompile(pattern string, opt regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, regexp2.ECMAScript|opt)
	re.MatchTimeout = time.Second
	return re
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	if err != nil {
		// only a timeout ends up here
		return false
	}
	return ok
}

type scalarValidator func(value string) bool

// scalarValidators must not be modified after init.
var scalarValidators = map[ScalarKind]scalarValidator{
	ScalarID:           validateString,
	ScalarString:       validateString,
	ScalarBigInt:       validateBigInt,
	ScalarInt:          validateInt,
	ScalarDouble:       validateFloat,
	ScalarFloat:        validateFloat,
	ScalarBoolean:      validateBoolean,
	ScalarAWSJSON:      validateJSON,
	ScalarAWSDate:      func(s string) bool { return matches(awsDateRegex, s) },
	ScalarAWSTime:      func(s string) bool { return matches(awsTimeRegex, s) },
	ScalarAWSDateTime:  func(s string) bool { return matches(awsDateTimeRegex, s) },
	ScalarAWSTimestamp: validateInt,
	ScalarAWSEmail:     func(s string) bool { return matches(awsEmailRegex, s) },
	ScalarAWSURL:       func(s string) bool { return matches(awsURLRegex, s) },
	ScalarAWSPhone:     func(s string) bool { return matches(awsPhoneRegex, s) },
	ScalarAWSIPAddress: validateIPAddress,
}

func lookupValidator(kind ScalarKind) (scalarValidator, bool) {
	validator, ok := scalarValidators[kind]
	return validator, ok
}

// scalars written to storage as numbers or booleans rather than strings.
var nonStringStorageScalars = map[ScalarKind]bool{
	ScalarBigInt:  true,
	ScalarInt:     true,
	ScalarDouble:  true,
	ScalarFloat:   true,
	ScalarBoolean: true,
}

func storeAsString(kind ScalarKind) bool {
	return !nonStringStorageScalars[kind]
}

func validateString(string) bool {
	return true
}

func validateBigInt(s string) bool {
	_, ok := new(big.Int).SetString(s, 10)
	return ok
}

func validateInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// validateFloat accepts finite decimal literals only. NaN, Inf and hex
// floats would be written into the template unquoted.
func validateFloat(s string) bool {
	if strings.ContainsAny(s, "xX") {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func validateBoolean(s string) bool {
	return matches(boolRegex, s)
}

func validateJSON(s string) bool {
	return json.Valid([]byte(s))
}

func validateIPAddress(s string) bool {
	return matches(awsIPv4Regex, s) || matches(awsIPv6Regex, s)
}
