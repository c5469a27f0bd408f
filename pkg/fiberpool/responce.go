package fiberpool

import (
	fibercli "github.com/gofiber/fiber/v3/client"
)

type fiberResp struct {
	status int
	body   []byte
}

// newFiberResp copies the body and releases r together with its request.
func newFiberResp(r *fibercli.Response) fiberResp {
	b := append([]byte(nil), r.Body()...)
	status := r.StatusCode()
	r.Close()
	return fiberResp{
		status: status,
		body:   b,
	}
}

func (r fiberResp) StatusCode() int { return r.status }
func (r fiberResp) Body() []byte    { return r.body }
