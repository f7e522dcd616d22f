package gateway

import (
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
)

// Request is the normalized request the handler works on, independent of
// the API Gateway payload version or the local HTTP server.
type Request struct {
	Method          string
	PathParameters  map[string]string
	Body            string
	IsBase64Encoded bool
	Authorizer      map[string]interface{}
	RequestID       string
}

// Response is the normalized response envelope
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// FromProxyRequest converts a REST API (payload v1) proxy event
func FromProxyRequest(req events.APIGatewayProxyRequest) Request {
	return Request{
		Method:          req.HTTPMethod,
		PathParameters:  req.PathParameters,
		Body:            req.Body,
		IsBase64Encoded: req.IsBase64Encoded,
		Authorizer:      req.RequestContext.Authorizer,
		RequestID:       req.RequestContext.RequestID,
	}
}

// ToProxyResponse converts the response into a REST API proxy response
func (r Response) ToProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}

func (r Request) pathParameter(name string) string {
	if r.PathParameters == nil {
		return ""
	}
	return r.PathParameters[name]
}

func (r Request) decodedBody() ([]byte, error) {
	if !r.IsBase64Encoded {
		return []byte(r.Body), nil
	}
	return base64.StdEncoding.DecodeString(r.Body)
}

// ClaimsAuthorizer wraps flat JWT claims the way a Cognito user pool
// authorizer presents them
func ClaimsAuthorizer(claims map[string]string) map[string]interface{} {
	if len(claims) == 0 {
		return nil
	}
	c := make(map[string]interface{}, len(claims))
	for k, v := range claims {
		c[k] = v
	}
	return map[string]interface{}{"claims": c}
}

// CallerEmail extracts the caller's e-mail from authorizer claims,
// falling back to "unknown"
func CallerEmail(authorizer map[string]interface{}) string {
	const unknown = "unknown"

	var email interface{}
	switch claims := authorizer["claims"].(type) {
	case map[string]interface{}:
		email = claims["email"]
	case map[string]string:
		email = claims["email"]
	default:
		return unknown
	}

	if s, ok := email.(string); ok && s != "" {
		return s
	}
	return unknown
}
