package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/clintrovert/issueseed/pkg/types"
)

const (
	// MediaType is sent as the Accept header on every request
	MediaType = "application/vnd.github+json"

	// tokenType makes oauth2 emit "Authorization: token <TOKEN>"
	tokenType = "token"
)

// Client wraps the GitHub issues API
type Client struct {
	apiClient *github.Client
	logger    *zap.Logger
}

// NewClient creates a new GitHub client. An empty apiURL targets api.github.com.
func NewClient(accessToken, apiURL string, logger *zap.Logger) (*Client, error) {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken, TokenType: tokenType},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Transport = &acceptTransport{base: tc.Transport}

	apiClient := github.NewClient(tc)
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse api url: %w", err)
		}
		apiClient.BaseURL = baseURL
	}

	return &Client{
		apiClient: apiClient,
		logger:    logger,
	}, nil
}

// CreateIssue files one issue. A non-201 response is reported in the Result;
// the returned error is set only when no HTTP response was received.
func (c *Client) CreateIssue(ctx context.Context, repo types.RepositoryInfo, record types.IssueRecord) (types.Result, error) {
	labels := record.LabelSet()
	req := &github.IssueRequest{
		Title:  github.String(record.Title),
		Body:   github.String(record.Body),
		Labels: &labels,
	}

	result := types.Result{Record: record}

	// Every record goes on the wire; go-github would otherwise answer from
	// the rate limit state of the previous response.
	ctx = context.WithValue(ctx, github.BypassRateLimitCheck, true)

	issue, resp, err := c.apiClient.Issues.Create(ctx, repo.Owner, repo.Name, req)
	if resp == nil {
		if err == nil {
			err = errors.New("no response")
		}
		return result, fmt.Errorf("failed to create issue %q: %w", record.Title, err)
	}
	result.StatusCode = resp.StatusCode

	c.logger.Debug("github create issue response",
		zap.String("repository", repo.FullName()),
		zap.String("title", record.Title),
		zap.Int("status_code", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusCreated {
		result.Status = types.StatusFailed
		result.APIError = apiErrorFrom(err, resp.StatusCode)
		result.ErrorBody = readErrorBody(resp.Response)
		return result, nil
	}

	result.Status = types.StatusCreated
	if err != nil {
		// Issue exists server-side even though the body could not be decoded.
		c.logger.Warn("failed to decode created issue",
			zap.String("title", record.Title),
			zap.Error(err),
		)
		return result, nil
	}

	result.Issue = &types.IssueInfo{
		Number: issue.GetNumber(),
		URL:    issue.GetHTMLURL(),
	}

	return result, nil
}

// readErrorBody returns the raw JSON error body, which go-github's
// CheckResponse leaves readable on the response. Non-JSON bodies yield nil.
func readErrorBody(resp *http.Response) json.RawMessage {
	if resp == nil || resp.Body == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(data) {
		return nil
	}
	return json.RawMessage(data)
}

// apiErrorFrom extracts the error payload go-github decoded from the response
func apiErrorFrom(err error, statusCode int) *types.APIError {
	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError

	switch {
	case errors.As(err, &errResp):
		apiErr := &types.APIError{
			Message:          errResp.Message,
			DocumentationURL: errResp.DocumentationURL,
		}
		for _, e := range errResp.Errors {
			apiErr.Errors = append(apiErr.Errors, types.APIErrorEntry{
				Resource: e.Resource,
				Field:    e.Field,
				Code:     e.Code,
				Message:  e.Message,
			})
		}
		return apiErr
	case errors.As(err, &rateErr):
		return &types.APIError{Message: rateErr.Message}
	case errors.As(err, &abuseErr):
		return &types.APIError{Message: abuseErr.Message}
	case err != nil:
		return &types.APIError{Message: err.Error()}
	default:
		return &types.APIError{
			Message: fmt.Sprintf("unexpected status %d %s", statusCode, http.StatusText(statusCode)),
		}
	}
}

// acceptTransport pins the Accept header to the GitHub JSON media type
type acceptTransport struct {
	base http.RoundTripper
}

func (t *acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	req2.Header.Set("Accept", MediaType)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req2)
}
