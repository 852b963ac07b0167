package mcontext

import "context"

type contextKey string

const requestKey contextKey = "request"

// UnknownOrigin is used when the request has neither Origin nor Referer
const UnknownOrigin = "unknown"

// request metadata stored in the context
type request struct {
	ip     string
	origin string
}

// WithRequest sets the client IP address and the origin (hostname of the Origin or Referer header) in the context
func WithRequest(ctx context.Context, ip, origin string) context.Context {
	return context.WithValue(ctx, requestKey, &request{ip: ip, origin: origin})
}

func get(ctx context.Context) *request {
	val, ok := ctx.Value(requestKey).(*request)
	if ok {
		return val
	}
	return &request{}
}

// GetIP retrieves the client IP address from the context
func GetIP(ctx context.Context) string {
	return get(ctx).ip
}

// GetOrigin retrieves the origin from the context, UnknownOrigin if it is not set
func GetOrigin(ctx context.Context) string {
	if origin := get(ctx).origin; origin != "" {
		return origin
	}
	return UnknownOrigin
}
