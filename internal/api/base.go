package api

import (
	"bytes"
	"context"
	"mime"
	"strings"

	"github.com/gnip/gnip-go/internal/codec"
	gerrors "github.com/gnip/gnip-go/internal/errors"
	"github.com/gnip/gnip-go/internal/request"
	"github.com/gnip/gnip-go/internal/transport"
	"github.com/gnip/gnip-go/internal/types"
)

// Caller bundles what every operation needs to reach the service.
type Caller struct {
	Transport transport.Transport
	Codec     codec.Codec
}

// execute encodes d's body, sends it and returns the raw response. Only
// local encoding problems and transport failures are reported here; status
// codes are left to the interpreter.
func (c Caller) execute(ctx context.Context, d request.Descriptor) (*transport.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, gerrors.NewConnectivity(d.Op, err)
	}
	req := transport.Request{
		Op:     d.Op,
		Method: d.Method,
		Path:   d.Path,
		Accept: c.Codec.ContentType(),
	}
	if d.Body != nil {
		body, err := c.Codec.Encode(d.Body)
		if err != nil {
			return nil, gerrors.NewSerialization(d.Op, err)
		}
		req.Body = body
		req.ContentType = c.Codec.ContentType()
	}
	resp, err := c.Transport.Execute(ctx, req)
	if err != nil {
		return nil, gerrors.NewConnectivity(d.Op, err)
	}
	return resp, nil
}

// result runs a mutating operation and interprets its Result.
func (c Caller) result(ctx context.Context, d request.Descriptor) (*types.Result, error) {
	resp, err := c.execute(ctx, d)
	if err != nil {
		return nil, err
	}
	return Interpret(d.Op, resp, c.Codec)
}

// get runs a read and decodes the body into out.
func (c Caller) get(ctx context.Context, d request.Descriptor, out any) error {
	resp, err := c.execute(ctx, d)
	if err != nil {
		return err
	}
	if err := checkStatus(d.Op, resp); err != nil {
		return err
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return gerrors.New(gerrors.Serialization, d.Op, "empty response body")
	}
	if err := codecFor(resp, c.Codec).Decode(resp.Body, out); err != nil {
		return gerrors.NewSerialization(d.Op, err)
	}
	return nil
}

// Interpret maps a raw response to a Result or a classified error.
//   - 2xx with a body decodes the Result document
//   - 2xx with no body is a Result with an empty message
//   - anything else becomes an *errors.Error carrying the body verbatim
func Interpret(op string, resp *transport.Response, fallback codec.Codec) (*types.Result, error) {
	if err := checkStatus(op, resp); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return &types.Result{}, nil
	}
	var r types.Result
	if err := codecFor(resp, fallback).Decode(resp.Body, &r); err != nil {
		return nil, gerrors.NewSerialization(op, err)
	}
	return &r, nil
}

func checkStatus(op string, resp *transport.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return gerrors.FromStatus(op, resp.StatusCode, string(resp.Body))
}

// codecFor honours the response's declared media type and falls back to the
// configured codec when it is missing or unrecognised.
func codecFor(resp *transport.Response, fallback codec.Codec) codec.Codec {
	mt, _, err := mime.ParseMediaType(resp.ContentType)
	if err != nil {
		return fallback
	}
	switch {
	case strings.HasSuffix(mt, "json"):
		return codec.JSONCodec{}
	case strings.HasSuffix(mt, "xml"):
		return codec.XMLCodec{}
	}
	return fallback
}
