package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/mkunkel/tix/internal/adf"
)

// IssueFields is the editable field set for issue creation.
type IssueFields struct {
	ProjectKey  string
	Summary     string
	IssueType   string
	Description *adf.Doc
}

// Issue is the subset of issue data the CLI displays.
type Issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
		Status  struct {
			Name string `json:"name"`
		} `json:"status"`
		IssueType struct {
			Name string `json:"name"`
		} `json:"issuetype"`
		Assignee struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
		Updated     string          `json:"updated"`
		Description json.RawMessage `json:"description"`
	} `json:"fields"`
}

// DescriptionDoc decodes the issue's ADF description. A missing or null
// description decodes to an empty document.
func (i Issue) DescriptionDoc() (adf.Doc, error) {
	var doc adf.Doc
	if len(i.Fields.Description) == 0 || string(i.Fields.Description) == "null" {
		return doc, nil
	}
	if err := json.Unmarshal(i.Fields.Description, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse description: %w", err)
	}
	return doc, nil
}

// Transition is one available status move for an issue.
type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   struct {
		Name string `json:"name"`
	} `json:"to"`
}

// CreateIssue creates an issue and returns its key.
func (c *Client) CreateIssue(ctx context.Context, fields IssueFields) (string, error) {
	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"project":   map[string]string{"key": fields.ProjectKey},
			"summary":   fields.Summary,
			"issuetype": map[string]string{"name": fields.IssueType},
		},
	}
	if fields.Description != nil {
		payload["fields"].(map[string]interface{})["description"] = fields.Description
	}

	var created struct {
		Key string `json:"key"`
	}
	if err := c.do(ctx, "POST", "/rest/api/3/issue", payload, &created); err != nil {
		return "", fmt.Errorf("failed to create issue: %w", err)
	}
	return created.Key, nil
}

// GetIssue fetches a single issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (Issue, error) {
	var issue Issue
	if err := c.do(ctx, "GET", "/rest/api/3/issue/"+url.PathEscape(key), nil, &issue); err != nil {
		return issue, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	return issue, nil
}

// Search runs a JQL query and returns up to max issues.
func (c *Client) Search(ctx context.Context, jql string, max int) ([]Issue, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", fmt.Sprintf("%d", max))
	q.Set("fields", "summary,status,issuetype,assignee,updated")

	var result struct {
		Issues []Issue `json:"issues"`
	}
	if err := c.do(ctx, "GET", "/rest/api/3/search?"+q.Encode(), nil, &result); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return result.Issues, nil
}

// UpdateDescription replaces an issue's description with a new ADF
// document.
func (c *Client) UpdateDescription(ctx context.Context, key string, doc adf.Doc) error {
	payload := map[string]interface{}{
		"fields": map[string]interface{}{"description": doc},
	}
	if err := c.do(ctx, "PUT", "/rest/api/3/issue/"+url.PathEscape(key), payload, nil); err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}
	return nil
}

// Transitions lists the status moves currently available for an issue.
func (c *Client) Transitions(ctx context.Context, key string) ([]Transition, error) {
	var result struct {
		Transitions []Transition `json:"transitions"`
	}
	if err := c.do(ctx, "GET", "/rest/api/3/issue/"+url.PathEscape(key)+"/transitions", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to list transitions for %s: %w", key, err)
	}
	return result.Transitions, nil
}

// Transition applies a status move by transition id.
func (c *Client) Transition(ctx context.Context, key, transitionID string) error {
	payload := map[string]interface{}{
		"transition": map[string]string{"id": transitionID},
	}
	if err := c.do(ctx, "POST", "/rest/api/3/issue/"+url.PathEscape(key)+"/transitions", payload, nil); err != nil {
		return fmt.Errorf("failed to transition %s: %w", key, err)
	}
	return nil
}

// AddComment posts an ADF comment on an issue.
func (c *Client) AddComment(ctx context.Context, key string, doc adf.Doc) error {
	payload := map[string]interface{}{"body": doc}
	if err := c.do(ctx, "POST", "/rest/api/3/issue/"+url.PathEscape(key)+"/comment", payload, nil); err != nil {
		return fmt.Errorf("failed to comment on %s: %w", key, err)
	}
	return nil
}

// AddWorklog records time spent on an issue. comment may be nil.
func (c *Client) AddWorklog(ctx context.Context, key string, started time.Time, spent time.Duration, comment *adf.Doc) error {
	payload := map[string]interface{}{
		"started":          started.Format("2006-01-02T15:04:05.000-0700"),
		"timeSpentSeconds": int(spent.Seconds()),
	}
	if comment != nil {
		payload["comment"] = comment
	}
	if err := c.do(ctx, "POST", "/rest/api/3/issue/"+url.PathEscape(key)+"/worklog", payload, nil); err != nil {
		return fmt.Errorf("failed to log work on %s: %w", key, err)
	}
	return nil
}
