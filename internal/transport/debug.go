package transport

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/rs/zerolog/log"
)

// debugTransport logs every request and response at debug level.
//
// Enable it with GNIP_DEBUG=true, DEBUG=true, or the client's debug option.
// Dumps include bodies, so keep it out of production; the Authorization
// header is redacted.
type debugTransport struct{ base http.RoundTripper }

var authHeader = regexp.MustCompile(`(?mi)^(Authorization:\s*)(.*)$`)

func redact(dump []byte) string {
	return string(authHeader.ReplaceAll(dump, []byte("${1}REDACTED")))
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := req.Header.Get(RequestIDHeader)
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", redact(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks GNIP_DEBUG and DEBUG for "true".
func debugLoggingRequested() bool {
	return os.Getenv("GNIP_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
