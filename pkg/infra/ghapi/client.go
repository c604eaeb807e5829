package ghapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octobranch/pkg/domain/interfaces"
	"github.com/m-mizutani/octobranch/pkg/domain/model"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.github.com/"

type Client struct {
	client *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*config)

// WithBaseURL sets base URL of GitHub REST API. It is used for GitHub Enterprise Server and testing.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient sets HTTP client that is used under the token transport
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token.Blank() {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	cfg := &config{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range options {
		opt(cfg)
	}

	baseURL, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL), goerr.V("error", err.Error()))
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API base URL must be absolute", goerr.V("url", cfg.baseURL))
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	ctx := context.Background()
	if cfg.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, cfg.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})

	client := github.NewClient(oauth2.NewClient(ctx, ts))
	client.BaseURL = baseURL

	return &Client{client: client}, nil
}

// ListRepositories returns repositories of the account in the order of API response.
// https://docs.github.com/en/rest/repos/repos#list-repositories-for-a-user
func (x *Client) ListRepositories(ctx context.Context, account string) ([]*model.Repository, error) {
	segment, err := escapePathSegment(account)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid account", goerr.V("account", account))
	}

	var repos []*github.Repository
	if err := x.get(ctx, "users/"+segment+"/repos", &repos); err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("account", account))
	}

	result := make([]*model.Repository, len(repos))
	for i, repo := range repos {
		if repo == nil || repo.Name == nil || repo.Fork == nil || repo.Owner == nil || repo.Owner.Login == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "repository lacks name, fork or owner.login",
				goerr.V("account", account),
				goerr.V("index", i),
			)
		}

		result[i] = &model.Repository{
			Name:       repo.GetName(),
			Fork:       repo.GetFork(),
			OwnerLogin: repo.GetOwner().GetLogin(),
		}
	}

	logging.From(ctx).Debug("Listed repositories",
		slog.String("account", account),
		slog.Int("count", len(result)),
	)

	return result, nil
}

// ListBranches returns branches of the repository in the order of API response.
// https://docs.github.com/en/rest/branches/branches#list-branches
func (x *Client) ListBranches(ctx context.Context, account, repo string) ([]*model.Branch, error) {
	ownerSegment, err := escapePathSegment(account)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid account", goerr.V("account", account))
	}
	repoSegment, err := escapePathSegment(repo)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid repository name", goerr.V("repo", repo))
	}

	var branches []*github.Branch
	if err := x.get(ctx, "repos/"+ownerSegment+"/"+repoSegment+"/branches", &branches); err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("account", account), goerr.V("repo", repo))
	}

	result := make([]*model.Branch, len(branches))
	for i, branch := range branches {
		if branch == nil || branch.Name == nil || branch.Commit == nil || branch.Commit.SHA == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "branch lacks name or commit.sha",
				goerr.V("account", account),
				goerr.V("repo", repo),
				goerr.V("index", i),
			)
		}

		result[i] = &model.Branch{
			Name:      types.BranchName(branch.GetName()),
			CommitSHA: types.CommitSHA(branch.GetCommit().GetSHA()),
		}
	}

	return result, nil
}

// get sends authenticated GET request and decodes JSON body into v. Status other than 200 is returned as *types.StatusError without decoding.
func (x *Client) get(ctx context.Context, path string, v any) error {
	req, err := x.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return goerr.Wrap(types.ErrInvalidPathSegment, "failed to build request", goerr.V("path", path), goerr.V("error", err.Error()))
	}

	logger := logging.From(ctx)
	logger.Debug("Sending GitHub API request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
	)

	resp, err := x.client.Do(ctx, req, v)
	if resp != nil && resp.StatusCode != http.StatusOK {
		logger.Debug("GitHub API returned unexpected status",
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return goerr.Wrap(&types.StatusError{StatusCode: resp.StatusCode}, "unexpected GitHub API status", goerr.V("path", path))
	}
	if err != nil {
		return goerr.Wrap(err, "failed to call GitHub API", goerr.V("path", path))
	}

	return nil
}

// escapePathSegment percent-encodes s as one URL path segment. Empty, non UTF-8, control characters and dot segments can not be a segment safely.
func escapePathSegment(s string) (string, error) {
	if s == "" || s == "." || s == ".." || !utf8.ValidString(s) {
		return "", goerr.Wrap(types.ErrInvalidPathSegment, "not a valid path segment", goerr.V("value", s))
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", goerr.Wrap(types.ErrInvalidPathSegment, "path segment has control character", goerr.V("value", s))
		}
	}

	return url.PathEscape(s), nil
}
