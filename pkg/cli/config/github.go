package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octobranch/pkg/domain/types"
	"github.com/m-mizutani/octobranch/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

const tokenEnvName = "GITHUB_TOKEN"

type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	envFile string
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token. If not set, " + tokenEnvName + " in env file is used",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("OCTOBRANCH_GITHUB_TOKEN", tokenEnvName),
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "dotenv file to read " + tokenEnvName,
			Category:    "GitHub",
			Value:       ".env",
			Destination: &x.envFile,
			Sources:     cli.EnvVars("OCTOBRANCH_ENV_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Base URL of GitHub REST API",
			Category:    "GitHub",
			Value:       ghapi.DefaultBaseURL,
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("OCTOBRANCH_GITHUB_API_URL"),
		},
	}
}

// Token returns GitHub token given by flag or environment variable, or GITHUB_TOKEN in env file as fallback. Blank token is an error.
func (x *GitHub) Token() (types.GitHubToken, error) {
	if !x.token.Blank() {
		return x.token, nil
	}

	if x.envFile != "" {
		envs, err := godotenv.Read(x.envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", goerr.Wrap(err, "failed to read env file", goerr.V("path", x.envFile))
		}

		if token := types.GitHubToken(envs[tokenEnvName]); !token.Blank() {
			return token, nil
		}
	}

	return "", goerr.Wrap(types.ErrInvalidOption, tokenEnvName+" is not found", goerr.V("env_file", x.envFile))
}

func (x *GitHub) NewClient() (*ghapi.Client, error) {
	token, err := x.Token()
	if err != nil {
		return nil, err
	}

	return ghapi.New(token, ghapi.WithBaseURL(x.baseURL))
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("envFile", x.envFile),
		slog.String("baseURL", x.baseURL),
	)
}
