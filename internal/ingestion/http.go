package ingestion

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// maxBodyBytes matches the API Gateway payload limit
const maxBodyBytes = 10 << 20

// HTTPHandler serves the Lambda handler over plain net/http for local runs.
func (s *Service) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			s.logger().Warn("Failed to read request body", "error", err)
			body = nil
		}

		resp, _ := s.HandleRequest(r.Context(), toProxyRequest(r, body))

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			_, _ = io.WriteString(w, resp.Body)
		}
	})
}

func toProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for k := range r.Header {
		headers[k] = r.Header.Get(k)
	}

	query := make(map[string]string, len(r.URL.Query()))
	for k := range r.URL.Query() {
		query[k] = r.URL.Query().Get(k)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            r.Method,
		Path:                  r.URL.Path,
		Headers:               headers,
		MultiValueHeaders:     r.Header,
		QueryStringParameters: query,
		Body:                  string(body),
	}
}
