package github

// GraphQL documents issued by the fetcher. Every query selects rateLimit so
// each successful call refreshes the quota snapshot.

const prSearchQuery = `
query($searchQuery: String!, $first: Int!, $after: String) {
  search(query: $searchQuery, type: ISSUE, first: $first, after: $after) {
    issueCount
    pageInfo {
      hasNextPage
      endCursor
    }
    nodes {
      __typename
      ... on PullRequest {
        state
        createdAt
        mergedAt
        additions
        deletions
        mergedBy {
          login
        }
        repository {
          name
          owner {
            login
          }
          stargazerCount
        }
      }
    }
  }
  rateLimit {
    limit
    remaining
    used
    resetAt
  }
}`

const commentsQuery = `
query($login: String!, $first: Int!, $after: String) {
  user(login: $login) {
    issueComments(first: $first, after: $after, orderBy: {field: UPDATED_AT, direction: DESC}) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        createdAt
        reactions(first: 50) {
          nodes {
            content
          }
        }
        issue {
          author {
            login
          }
          repository {
            name
            owner {
              login
            }
            stargazerCount
          }
        }
        pullRequest {
          author {
            login
          }
        }
      }
    }
  }
  rateLimit {
    limit
    remaining
    used
    resetAt
  }
}`

const profileQuery = `
query($login: String!, $since: DateTime!, $first: Int!, $after: String) {
  user(login: $login) {
    login
    createdAt
    bio
    company
    location
    websiteUrl
    followers {
      totalCount
    }
    repositories(privacy: PUBLIC) {
      totalCount
    }
    issues(first: $first, after: $after, filterBy: {since: $since}) {
      pageInfo {
        hasNextPage
        endCursor
      }
      nodes {
        createdAt
        comments {
          totalCount
        }
        reactions {
          totalCount
        }
        repository {
          name
          owner {
            login
          }
          stargazerCount
        }
      }
    }
  }
  rateLimit {
    limit
    remaining
    used
    resetAt
  }
}`
