package extop

import (
	"crypto/tls"
	"errors"
)

// fakeConn is a scripted Conn: each OID maps to a canned response or error.
// It records every request it sees.
type fakeConn struct {
	responses map[string]*Response
	errs      map[string]error
	requests  []*Request

	negotiateErr    error
	negotiated      bool
	supportsTLS     bool
	negotiateCalled int
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		responses: make(map[string]*Response),
		errs:      make(map[string]error),
	}
}

func (c *fakeConn) respond(oid string, resp *Response) {
	c.responses[oid] = resp
}

func (c *fakeConn) fail(oid string, err error) {
	c.errs[oid] = err
}

func (c *fakeConn) Extended(req *Request) (*Response, error) {
	c.requests = append(c.requests, req)
	if err, ok := c.errs[req.OID]; ok {
		return nil, err
	}
	if resp, ok := c.responses[req.OID]; ok {
		return resp, nil
	}
	return nil, errors.New("fakeConn: unscripted OID " + req.OID)
}

// tlsFakeConn additionally implements TLSNegotiator.
type tlsFakeConn struct {
	*fakeConn
}

func newTLSFakeConn() *tlsFakeConn {
	fc := newFakeConn()
	fc.supportsTLS = true
	return &tlsFakeConn{fakeConn: fc}
}

func (c *tlsFakeConn) NegotiateTLS(config *tls.Config) error {
	c.negotiateCalled++
	if c.negotiateErr != nil {
		return c.negotiateErr
	}
	c.negotiated = true
	return nil
}

func successResponse(oid string, value []byte) *Response {
	return &Response{
		Result: Result{Code: ResultSuccess},
		OID:    oid,
		Value:  value,
	}
}

func failureResponse(code ResultCode, diagnostic string) *Response {
	return &Response{
		Result: Result{Code: code, DiagnosticMessage: diagnostic},
	}
}
