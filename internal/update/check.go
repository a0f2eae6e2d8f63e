// Package update asks GitHub for the latest menuforge release.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Release repository.
const (
	Owner = "moasq"
	Repo  = "menuforge"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Result compares the running version with the latest release.
type Result struct {
	Latest  string
	Current string
	URL     string
}

// Available reports whether Latest is newer than Current.
func (r *Result) Available() bool {
	return r != nil && compareVersions(r.Latest, r.Current) > 0
}

// Checker queries a releases endpoint.
type Checker struct {
	Client  *http.Client
	BaseURL string
}

// NewChecker returns a Checker with a short timeout against GitHub.
func NewChecker() *Checker {
	return &Checker{Client: &http.Client{Timeout: 3 * time.Second}, BaseURL: DefaultBaseURL}
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Latest fetches the newest release of owner/repo and compares it with
// current. A leading "v" is ignored on both sides.
func (c *Checker) Latest(ctx context.Context, owner, repo, current string) (*Result, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.BaseURL, "/"), owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("check for updates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("check for updates: %s", resp.Status)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return &Result{
		Latest:  strings.TrimPrefix(rel.TagName, "v"),
		Current: strings.TrimPrefix(current, "v"),
		URL:     rel.HTMLURL,
	}, nil
}

// compareVersions returns >0 if a is newer than b, <0 if older and 0 if
// equal. Only major.minor.patch is compared.
func compareVersions(a, b string) int {
	ap, bp := parseVersion(a), parseVersion(b)
	for i := range ap {
		if ap[i] != bp[i] {
			return ap[i] - bp[i]
		}
	}
	return 0
}

func parseVersion(v string) [3]int {
	var parts [3]int
	v, _, _ = strings.Cut(v, "-")
	for i, s := range strings.SplitN(v, ".", 3) {
		parts[i], _ = strconv.Atoi(s)
	}
	return parts
}
