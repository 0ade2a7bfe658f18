package common

// AuthorizationHeader is the HTTP header carrying the bearer token on
// outbound authenticated requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix prefixes the token value in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeader carries the client-generated correlation id attached to
// every outbound request.
const RequestIDHeader = "X-Request-ID"
