package restypool

import (
	"bytes"

	resty "resty.dev/v3"
)

// restyResp is a snapshot of status and body; it outlives the resty response.
type restyResp struct {
	status int
	body   []byte
}

func newRestyResp(r *resty.Response) restyResp {
	return restyResp{status: r.StatusCode(), body: bytes.Clone(r.Bytes())}
}

func (r restyResp) StatusCode() int { return r.status }
func (r restyResp) Body() []byte    { return r.body }
