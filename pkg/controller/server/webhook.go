package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// parseWebhook validates the signature of a webhook request and returns the
// repository to mirror. An empty name means the event needs no sync.
func parseWebhook(r *http.Request, secret types.WebhookSecret, org types.OrgName) (types.RepoName, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return "", goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return "", goerr.Wrap(err, "parsing webhook", goerr.V("type", github.WebHookType(r)))
	}

	owner, name := eventRepository(event)
	if name == "" {
		return "", nil
	}
	if !strings.EqualFold(owner, string(org)) {
		logging.From(ctx).Warn("ignore event of another organization",
			slog.String("owner", owner),
			slog.String("repo", name),
		)
		return "", nil
	}

	logging.From(ctx).Info("received GitHub event",
		slog.String("type", github.WebHookType(r)),
		slog.String("repo", name),
	)
	return types.RepoName(name), nil
}

// eventRepository returns owner and name of the repository whose refs were
// changed by event. name is empty for events that do not change refs.
func eventRepository(event any) (owner, name string) {
	switch ev := event.(type) {
	case *github.PushEvent:
		return ev.GetRepo().GetOwner().GetLogin(), ev.GetRepo().GetName()

	case *github.CreateEvent:
		return ev.GetRepo().GetOwner().GetLogin(), ev.GetRepo().GetName()

	case *github.RepositoryEvent:
		if ev.GetAction() != "created" {
			logging.Default().Debug("ignore repository event", slog.String("action", ev.GetAction()))
			return "", ""
		}
		return ev.GetRepo().GetOwner().GetLogin(), ev.GetRepo().GetName()

	case *github.PingEvent, *github.InstallationEvent, *github.InstallationRepositoriesEvent:
		return "", "" // ignore

	default:
		logging.Default().Warn("unsupported event", slog.String("event", fmt.Sprintf("%T", event)))
		return "", ""
	}
}
