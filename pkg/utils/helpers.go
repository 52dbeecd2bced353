package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseRepoSlug splits an "owner/name" slug into its components.
func ParseRepoSlug(slug string) (owner, name string, err error) {
	parts := strings.Split(strings.Trim(slug, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository slug %q, expected owner/name", slug)
	}
	return parts[0], parts[1], nil
}

// ParseRepoURL parses a GitHub repository URL into owner and name components.
func ParseRepoURL(repoURL string) (owner, name string, err error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return "", "", err
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid GitHub repository URL")
	}

	return parts[0], parts[1], nil
}
