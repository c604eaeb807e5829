package ghapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/infra/ghapi"
	"github.com/m-mizutani/octobranch/pkg/utils/testutil"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ghapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := ghapi.New(types.GitHubToken("test-token"), ghapi.WithBaseURL(srv.URL))
	gt.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("create client with token", func(t *testing.T) {
		client, err := ghapi.New(types.GitHubToken("test-token"))
		gt.NoError(t, err)
		gt.V(t, client == nil).Equal(false)
	})

	t.Run("empty token fails", func(t *testing.T) {
		client, err := ghapi.New(types.GitHubToken(""))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.V(t, client == nil).Equal(true)
	})

	t.Run("blank token fails", func(t *testing.T) {
		_, err := ghapi.New(types.GitHubToken("  \t\n"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("relative base URL fails", func(t *testing.T) {
		_, err := ghapi.New(types.GitHubToken("test-token"), ghapi.WithBaseURL("api.example.com"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestListRepositories(t *testing.T) {
	t.Run("send authenticated request and decode repositories", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodGet)
			gt.V(t, r.URL.Path).Equal("/users/alice/repos")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")
			gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github.v3+json")

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[
				{"name":"a","fork":false,"owner":{"login":"alice"}},
				{"name":"b","fork":true,"owner":{"login":"alice"}}
			]`))
		})

		repos, err := client.ListRepositories(context.Background(), "alice")
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(2)
		gt.V(t, repos[0].Name).Equal("a")
		gt.V(t, repos[0].Fork).Equal(false)
		gt.V(t, repos[0].OwnerLogin).Equal("alice")
		gt.V(t, repos[1].Name).Equal("b")
		gt.V(t, repos[1].Fork).Equal(true)
	})

	t.Run("account is percent-encoded", func(t *testing.T) {
		var escapedPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			escapedPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`[]`))
		})

		repos, err := client.ListRepositories(context.Background(), "al ice")
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(0)
		gt.V(t, escapedPath).Equal("/users/al%20ice/repos")
	})

	t.Run("non-200 status is returned as StatusError", func(t *testing.T) {
		testCases := []int{
			http.StatusNotFound,
			http.StatusForbidden,
			http.StatusInternalServerError,
		}

		for _, code := range testCases {
			t.Run(http.StatusText(code), func(t *testing.T) {
				client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(code)
					_, _ = w.Write([]byte(`{"message":"error"}`))
				})

				_, err := client.ListRepositories(context.Background(), "alice")
				gt.Error(t, err)

				var statusErr *types.StatusError
				gt.True(t, errors.As(err, &statusErr))
				gt.V(t, statusErr.StatusCode).Equal(code)
			})
		}
	})

	t.Run("invalid account is not sent", func(t *testing.T) {
		called := false
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := client.ListRepositories(context.Background(), "..")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidPathSegment))
		gt.False(t, called)
	})

	t.Run("malformed JSON is fatal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"an array"}`))
		})

		_, err := client.ListRepositories(context.Background(), "alice")
		gt.Error(t, err)

		var statusErr *types.StatusError
		gt.False(t, errors.As(err, &statusErr))
		gt.False(t, errors.Is(err, types.ErrInvalidPathSegment))
	})

	t.Run("missing owner.login is fatal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"name":"a","fork":false}]`))
		})

		_, err := client.ListRepositories(context.Background(), "alice")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})

	t.Run("missing fork is fatal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"name":"a","owner":{"login":"alice"}}]`))
		})

		_, err := client.ListRepositories(context.Background(), "alice")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})
}

func TestListBranches(t *testing.T) {
	t.Run("decode branches in received order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/alice/a/branches")
			gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

			_, _ = w.Write([]byte(`[
				{"name":"main","commit":{"sha":"0123456789abcdef0123456789abcdef01234567"}},
				{"name":"develop","commit":{"sha":"not-a-sha"}}
			]`))
		})

		branches, err := client.ListBranches(context.Background(), "alice", "a")
		gt.NoError(t, err)
		gt.V(t, len(branches)).Equal(2)
		gt.V(t, branches[0].Name).Equal(types.BranchName("main"))
		gt.V(t, branches[0].CommitSHA).Equal(types.CommitSHA("0123456789abcdef0123456789abcdef01234567"))
		gt.V(t, branches[1].Name).Equal(types.BranchName("develop"))
		gt.V(t, branches[1].CommitSHA).Equal(types.CommitSHA("not-a-sha"))
	})

	t.Run("non-200 status is returned as StatusError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.ListBranches(context.Background(), "alice", "a")
		var statusErr *types.StatusError
		gt.True(t, errors.As(err, &statusErr))
		gt.V(t, statusErr.StatusCode).Equal(http.StatusInternalServerError)
	})

	t.Run("invalid repository name", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be sent")
		})

		_, err := client.ListBranches(context.Background(), "alice", "bad\x00name")
		gt.True(t, errors.Is(err, types.ErrInvalidPathSegment))
	})

	t.Run("missing commit.sha is fatal", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"name":"main","commit":{}}]`))
		})

		_, err := client.ListBranches(context.Background(), "alice", "a")
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})
}

func TestEscapePathSegment(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
		valid  bool
	}{
		{name: "plain", input: "octocat", expect: "octocat", valid: true},
		{name: "space", input: "a b", expect: "a%20b", valid: true},
		{name: "slash", input: "a/b", expect: "a%2Fb", valid: true},
		{name: "query", input: "a?b#c", expect: "a%3Fb%23c", valid: true},
		{name: "unicode", input: "ñandú", expect: "%C3%B1and%C3%BA", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "dot", input: ".", valid: false},
		{name: "dot dot", input: "..", valid: false},
		{name: "control", input: "a\nb", valid: false},
		{name: "invalid utf-8", input: "a\xffb", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ghapi.EscapePathSegmentForTest(tc.input)
			if !tc.valid {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrInvalidPathSegment))
				return
			}
			gt.NoError(t, err)
			gt.V(t, got).Equal(tc.expect)
		})
	}
}

func TestListBranches_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	account := "torvalds"

	client, err := ghapi.New(types.GitHubToken(token))
	gt.NoError(t, err)

	ctx := context.Background()
	repos, err := client.ListRepositories(ctx, account)
	gt.NoError(t, err)
	gt.V(t, len(repos) > 0).Equal(true)
	gt.V(t, repos[0].OwnerLogin).Equal(account)

	ptnSHA := regexp.MustCompile("^[a-f0-9]{40}$")
	for _, repo := range repos {
		if repo.Fork {
			continue
		}

		branches, err := client.ListBranches(ctx, account, repo.Name)
		gt.NoError(t, err)
		for _, branch := range branches {
			gt.True(t, ptnSHA.MatchString(string(branch.CommitSHA)))
		}
		t.Logf("%s: %d branches", repo.Name, len(branches))
		break
	}
}
