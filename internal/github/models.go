package github

import (
	"encoding/json"
	"time"
)

// GraphQL wire shapes. Search results mix Issue and PullRequest nodes in one
// connection, so nodes carry an explicit __typename tag and are filtered on
// it before use.

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type actorNode struct {
	Login string `json:"login"`
}

type repositoryNode struct {
	Name           string    `json:"name"`
	Owner          actorNode `json:"owner"`
	StargazerCount int       `json:"stargazerCount"`
}

// quotaTelemetry is embedded in every per-query data struct so the fetcher
// can replace its RateLimitStatus after each successful call.
type quotaTelemetry struct {
	RateLimit RateLimitStatus `json:"rateLimit"`
}

func (q quotaTelemetry) Quota() RateLimitStatus {
	return q.RateLimit
}

type quotaCarrier interface {
	Quota() RateLimitStatus
}

// searchPRNode is one node of the PR search connection. Typename is the
// discriminator: anything that is not a PullRequest is skipped.
type searchPRNode struct {
	Typename   string         `json:"__typename"`
	State      string         `json:"state"`
	CreatedAt  time.Time      `json:"createdAt"`
	MergedAt   *time.Time     `json:"mergedAt"`
	Additions  int            `json:"additions"`
	Deletions  int            `json:"deletions"`
	MergedBy   *actorNode     `json:"mergedBy"`
	Repository repositoryNode `json:"repository"`
}

type prSearchData struct {
	Search struct {
		IssueCount int            `json:"issueCount"`
		PageInfo   pageInfo       `json:"pageInfo"`
		Nodes      []searchPRNode `json:"nodes"`
	} `json:"search"`
	quotaTelemetry
}

type reactionNode struct {
	Content string `json:"content"`
}

type commentNode struct {
	CreatedAt time.Time `json:"createdAt"`
	Reactions struct {
		Nodes []reactionNode `json:"nodes"`
	} `json:"reactions"`
	Issue struct {
		Author     *actorNode     `json:"author"`
		Repository repositoryNode `json:"repository"`
	} `json:"issue"`
	PullRequest *struct {
		Author *actorNode `json:"author"`
	} `json:"pullRequest"`
}

type commentsData struct {
	User *struct {
		IssueComments struct {
			PageInfo pageInfo      `json:"pageInfo"`
			Nodes    []commentNode `json:"nodes"`
		} `json:"issueComments"`
	} `json:"user"`
	quotaTelemetry
}

type issueNode struct {
	CreatedAt time.Time `json:"createdAt"`
	Comments  struct {
		TotalCount int `json:"totalCount"`
	} `json:"comments"`
	Reactions struct {
		TotalCount int `json:"totalCount"`
	} `json:"reactions"`
	Repository repositoryNode `json:"repository"`
}

type profileData struct {
	User *struct {
		Login      string    `json:"login"`
		CreatedAt  time.Time `json:"createdAt"`
		Bio        string    `json:"bio"`
		Company    string    `json:"company"`
		Location   string    `json:"location"`
		WebsiteURL string    `json:"websiteUrl"`
		Followers  struct {
			TotalCount int `json:"totalCount"`
		} `json:"followers"`
		Repositories struct {
			TotalCount int `json:"totalCount"`
		} `json:"repositories"`
		Issues struct {
			PageInfo pageInfo    `json:"pageInfo"`
			Nodes    []issueNode `json:"nodes"`
		} `json:"issues"`
	} `json:"user"`
	quotaTelemetry
}
