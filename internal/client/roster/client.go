package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/s21platform/messenger-service/internal/config"
	"github.com/s21platform/messenger-service/internal/model"
)

// Client talks to the roster service, the external owner of group
// membership. Membership is resolved on every call, never cached: group
// composition changes independently of the message log.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Roster.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Roster.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// errNotFound is the raw 404 from the roster; only the group-members lookup
// translates it into a domain error.
var errNotFound = fmt.Errorf("resource not found")

type groupMembersResponse struct {
	MemberIDs []uuid.UUID `json:"member_ids"`
}

type userGroupsResponse struct {
	GroupIDs []uuid.UUID `json:"group_ids"`
}

// GetGroupMembers returns the current members of the group.
// model.ErrGroupNotFound reports a group that no longer exists.
func (c *Client) GetGroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	url := fmt.Sprintf("%s/api/roster/groups/%s/members", c.baseURL, groupID)

	var response groupMembersResponse
	if err := c.getJSON(ctx, url, &response); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, model.ErrGroupNotFound
		}
		return nil, err
	}

	return response.MemberIDs, nil
}

// GetUserGroups returns the groups the user is currently a member of.
func (c *Client) GetUserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	url := fmt.Sprintf("%s/api/roster/users/%s/groups", c.baseURL, userID)

	var response userGroupsResponse
	if err := c.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	return response.GroupIDs, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
