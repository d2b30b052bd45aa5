package common

// AuthorizationHeader is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeader carries a per-request correlation id so client-side logs
// can be matched against backend logs.
const RequestIDHeader = "X-Request-Id"
