package client

import (
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// RequestOpt is a function which modifies a single request
type RequestOpt func(*requestOpts) error

type requestOpts struct {
	path      []string
	query     url.Values
	token     Token
	noTimeout bool
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OptPath appends path segments to the endpoint path
func OptPath(path ...string) RequestOpt {
	return func(o *requestOpts) error {
		o.path = append(o.path, path...)
		return nil
	}
}

// OptQuery appends query parameters to the request, merged with any
// client-scoped parameters
func OptQuery(v url.Values) RequestOpt {
	return func(o *requestOpts) error {
		for key, values := range v {
			for _, value := range values {
				o.query.Add(key, value)
			}
		}
		return nil
	}
}

// OptToken overrides the client authorization token for this request
func OptToken(v Token) RequestOpt {
	return func(o *requestOpts) error {
		o.token = v
		return nil
	}
}

// OptNoTimeout disables the client timeout for this request
func OptNoTimeout() RequestOpt {
	return func(o *requestOpts) error {
		o.noTimeout = true
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyRequestOpts(opts ...RequestOpt) (*requestOpts, error) {
	o := &requestOpts{query: url.Values{}}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
