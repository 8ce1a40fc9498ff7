package graphql

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medicare-portal/internal/pkg/constvars"
	"medicare-portal/internal/pkg/exceptions"
	"medicare-portal/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	clientInstance *Client
	onceClient     sync.Once
)

type Client struct {
	Endpoint   string
	HTTPClient *http.Client
	Log        *zap.Logger
}

type request struct {
	OperationName string                 `json:"operationName"`
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors Errors          `json:"errors"`
}

func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	onceClient.Do(func() {
		clientInstance = newClient(endpoint, timeout, logger)
	})
	return clientInstance
}

func newClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// Do posts one operation and decodes its data into out. GraphQL errors are
// returned wrapped so callers can still reach their codes with errors.As.
func (c *Client) Do(ctx context.Context, operation, query string, variables map[string]interface{}, accessToken string, out interface{}) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("graphql.Client.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGraphQLOpKey, operation),
	)

	requestJSON, err := json.Marshal(request{
		OperationName: operation,
		Query:         query,
		Variables:     variables,
	})
	if err != nil {
		c.Log.Error("graphql.Client.Do error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.Endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("graphql.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, accessToken))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("graphql.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("graphql.Client.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrGraphQLDecode(err, operation)
	}

	var result response
	decodeErr := json.Unmarshal(bodyBytes, &result)

	if decodeErr == nil && len(result.Errors) > 0 {
		c.Log.Error("graphql.Client.Do operation returned errors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGraphQLOpKey, operation),
			zap.String(constvars.LoggingErrorCodeKey, result.Errors.ErrorCode()),
			zap.Error(result.Errors),
		)
		return exceptions.ErrGraphQLResponse(result.Errors, operation)
	}

	if resp.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		c.Log.Error("graphql.Client.Do unexpected status code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrGraphQLStatus(err, resp.StatusCode)
	}

	if decodeErr != nil {
		c.Log.Error("graphql.Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(decodeErr),
		)
		return exceptions.ErrGraphQLDecode(decodeErr, operation)
	}

	if out != nil {
		err = json.Unmarshal(result.Data, out)
		if err != nil {
			c.Log.Error("graphql.Client.Do error decoding data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrGraphQLDecode(err, operation)
		}
	}

	c.Log.Info("graphql.Client.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGraphQLOpKey, operation),
	)
	return nil
}
