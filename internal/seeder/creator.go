// Package seeder files a fixed list of issues against one repository.
package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/clintrovert/issueseed/pkg/types"
)

// IssueAPI creates a single issue in a repository
type IssueAPI interface {
	CreateIssue(ctx context.Context, repo types.RepositoryInfo, record types.IssueRecord) (types.Result, error)
}

// IssueCreator submits its records to one repository, one at a time
type IssueCreator struct {
	api     IssueAPI
	repo    types.RepositoryInfo
	records []types.IssueRecord
	logger  *zap.Logger
}

// NewIssueCreator creates a new issue creator
func NewIssueCreator(
	api IssueAPI,
	repo types.RepositoryInfo,
	records []types.IssueRecord,
	logger *zap.Logger,
) *IssueCreator {
	owned := make([]types.IssueRecord, len(records))
	for i, r := range records {
		owned[i] = r.Clone()
	}

	return &IssueCreator{
		api:     api,
		repo:    repo,
		records: owned,
		logger:  logger,
	}
}

// CreateIssue submits one record. API failures come back in the Result;
// err is non-nil only for transport failures.
func (c *IssueCreator) CreateIssue(ctx context.Context, record types.IssueRecord) (types.Result, error) {
	result, err := c.api.CreateIssue(ctx, c.repo, record)
	if err != nil {
		c.logger.Error("transport failure creating issue",
			zap.String("repository", c.repo.FullName()),
			zap.String("title", record.Title),
			zap.Error(err),
		)
		return result, err
	}

	if result.Created() {
		fields := []zap.Field{
			zap.String("repository", c.repo.FullName()),
			zap.String("title", record.Title),
		}
		if result.Issue != nil {
			fields = append(fields,
				zap.Int("issue_number", result.Issue.Number),
				zap.String("issue_url", result.Issue.URL),
			)
		}
		c.logger.Info("created issue", fields...)
		return result, nil
	}

	fields := []zap.Field{
		zap.String("repository", c.repo.FullName()),
		zap.String("title", record.Title),
		zap.Int("status_code", result.StatusCode),
		zap.ByteString("error_body", result.ErrorPayload()),
	}
	c.logger.Warn("failed to create issue", fields...)

	return result, nil
}

// CreateAll submits every record in order. It stops early only on a transport
// failure or a cancelled context, returning the results gathered so far.
func (c *IssueCreator) CreateAll(ctx context.Context) ([]types.Result, error) {
	results := make([]types.Result, 0, len(c.records))

	for i, record := range c.records {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("stopped before issue %d of %d: %w", i+1, len(c.records), err)
		}

		result, err := c.CreateIssue(ctx, record)
		if err != nil {
			return results, fmt.Errorf("aborted at issue %d of %d: %w", i+1, len(c.records), err)
		}
		results = append(results, result)
	}

	created := 0
	for _, r := range results {
		if r.Created() {
			created++
		}
	}
	c.logger.Info("finished creating issues",
		zap.String("repository", c.repo.FullName()),
		zap.Int("total", len(results)),
		zap.Int("created", created),
		zap.Int("failed", len(results)-created),
	)

	return results, nil
}

// Records returns a copy of the records this creator submits
func (c *IssueCreator) Records() []types.IssueRecord {
	out := make([]types.IssueRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}
