package graphql

import "github.com/vektah/gqlparser/v2/ast"

// Prelude declares the scalars AppSync resolves without a user declaration.
// Parse it together with validator.Prelude before the user schema.
var Prelude = &ast.Source{
	Name: "prelude.appsync.graphql",
	Input: `"An extended ISO 8601 date string in the format ` + "`YYYY-MM-DD`" + `."
scalar AWSDate

"An extended ISO 8601 time string in the format ` + "`hh:mm:ss.sss`" + `."
scalar AWSTime

"An extended ISO 8601 date and time string in the format ` + "`YYYY-MM-DDThh:mm:ss.sssZ`" + `."
scalar AWSDateTime

"An integer value representing the number of seconds before or after ` + "`1970-01-01-T00:00Z`" + `."
scalar AWSTimestamp

"An email address in the format ` + "`local-part@domain-part`" + ` as defined by RFC 822."
scalar AWSEmail

"A JSON string."
scalar AWSJSON

"A URL as defined by RFC 1738."
scalar AWSURL

"A phone number."
scalar AWSPhone

"A valid IPv4 or IPv6 address."
scalar AWSIPAddress

"An arbitrary precision signed integer."
scalar BigInt

"A double precision floating point value."
scalar Double
`,
	BuiltIn: true,
}
