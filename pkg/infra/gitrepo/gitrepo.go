package gitrepo

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/model"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
	"github.com/m-mizutani/orgmigrate/pkg/utils/logging"
)

// basicAuthUser is accepted by GitHub for both personal access tokens and
// GitHub App installation tokens.
const basicAuthUser = "x-access-token"

var errNoRemote = goerr.New("no remote is bound to the working copy")

// Manager opens and clones working copies on the local filesystem
type Manager struct{}

var _ interfaces.Git = (*Manager)(nil)

func New() *Manager {
	return &Manager{}
}

func auth(remote model.RemoteBinding) transport.AuthMethod {
	if remote.Token == "" {
		return nil
	}
	return &http.BasicAuth{
		Username: basicAuthUser,
		Password: string(remote.Token),
	}
}

func (x *Manager) Clone(ctx context.Context, remote model.RemoteBinding, dir string) (interfaces.WorkingCopy, error) {
	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:        remote.URL,
		RemoteName: remote.Name,
		Auth:       auth(remote),
	})
	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		logging.From(ctx).Info("source repository is empty, initializing working copy", slog.String("dir", dir))
		repo, err = initEmpty(dir, remote)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clone repository", goerr.V("dir", dir))
	}

	return &WorkingCopy{repo: repo, dir: dir}, nil
}

func initEmpty(dir string, remote model.RemoteBinding) (*git.Repository, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, err
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: remote.Name,
		URLs: []string{remote.URL},
	}); err != nil {
		return nil, err
	}
	return repo, nil
}

func (x *Manager) Open(ctx context.Context, dir string) (interfaces.WorkingCopy, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, goerr.Wrap(types.ErrNotFound, "working copy not found", goerr.V("dir", dir))
		}
		return nil, goerr.Wrap(err, "failed to open working copy", goerr.V("dir", dir))
	}

	return &WorkingCopy{repo: repo, dir: dir}, nil
}

// WorkingCopy is a non-bare repository on disk. Credentials of the bound
// remote are kept in memory only and never written to the git config.
type WorkingCopy struct {
	repo   *git.Repository
	dir    string
	remote *model.RemoteBinding
}

var _ interfaces.WorkingCopy = (*WorkingCopy)(nil)

func (x *WorkingCopy) WithRemote(ctx context.Context, remote model.RemoteBinding, fn func(ctx context.Context) error) error {
	if remote.Name == "" {
		remote.Name = model.DefaultRemoteName
	}

	var prev *config.RemoteConfig
	if r, err := x.repo.Remote(remote.Name); err == nil {
		prev = r.Config()
	} else if !errors.Is(err, git.ErrRemoteNotFound) {
		return goerr.Wrap(err, "failed to read remote", goerr.V("remote", remote.Name))
	}

	if err := x.setRemote(&config.RemoteConfig{
		Name: remote.Name,
		URLs: []string{remote.URL},
	}); err != nil {
		return err
	}
	x.remote = &remote

	defer func() {
		x.remote = nil
		if prev == nil {
			return
		}
		if err := x.setRemote(prev); err != nil {
			logging.From(ctx).Warn("failed to restore remote",
				slog.String("dir", x.dir),
				slog.String("remote", prev.Name),
				slog.Any("error", err),
			)
		}
	}()

	return fn(ctx)
}

func (x *WorkingCopy) setRemote(cfg *config.RemoteConfig) error {
	if err := x.repo.DeleteRemote(cfg.Name); err != nil && !errors.Is(err, git.ErrRemoteNotFound) {
		return goerr.Wrap(err, "failed to delete remote", goerr.V("remote", cfg.Name))
	}
	if _, err := x.repo.CreateRemote(cfg); err != nil {
		return goerr.Wrap(err, "failed to create remote",
			goerr.V("remote", cfg.Name),
			goerr.V("urls", cfg.URLs),
		)
	}
	return nil
}

func (x *WorkingCopy) bound() (*model.RemoteBinding, error) {
	if x.remote == nil {
		return nil, goerr.Wrap(errNoRemote, "remote must be bound with WithRemote", goerr.V("dir", x.dir))
	}
	return x.remote, nil
}

func (x *WorkingCopy) Fetch(ctx context.Context) error {
	remote, err := x.bound()
	if err != nil {
		return err
	}

	err = x.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: remote.Name,
		Auth:       auth(*remote),
		RefSpecs: []config.RefSpec{
			config.RefSpec("+refs/heads/*:refs/remotes/" + remote.Name + "/*"),
			config.RefSpec("+refs/tags/*:refs/tags/*"),
		},
		Force: true,
	})
	switch {
	case err == nil,
		errors.Is(err, git.NoErrAlreadyUpToDate),
		errors.Is(err, transport.ErrEmptyRemoteRepository):
		return nil
	default:
		return goerr.Wrap(err, "failed to fetch", goerr.V("dir", x.dir))
	}
}

// RemoteBranches returns the short names of the remote-tracking branches of
// the bound remote, excluding HEAD.
func (x *WorkingCopy) RemoteBranches(ctx context.Context) ([]types.BranchName, error) {
	remote, err := x.bound()
	if err != nil {
		return nil, err
	}

	refs, err := x.repo.References()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list references", goerr.V("dir", x.dir))
	}
	defer refs.Close()

	prefix := "refs/remotes/" + remote.Name + "/"
	var branches []types.BranchName
	if err := refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if !ref.Name().IsRemote() || !strings.HasPrefix(name, prefix) {
			return nil
		}
		short := strings.TrimPrefix(name, prefix)
		if short == "HEAD" {
			return nil
		}
		branches = append(branches, types.BranchName(short))
		return nil
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate references", goerr.V("dir", x.dir))
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i] < branches[j] })
	return branches, nil
}

func (x *WorkingCopy) LocalBranches(ctx context.Context) ([]*model.Branch, error) {
	cfg, err := x.repo.Config()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config", goerr.V("dir", x.dir))
	}

	iter, err := x.repo.Branches()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list branches", goerr.V("dir", x.dir))
	}
	defer iter.Close()

	var branches []*model.Branch
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		branch := &model.Branch{Name: types.BranchName(name)}
		if b, ok := cfg.Branches[name]; ok {
			branch.Remote = b.Remote
			branch.Merge = b.Merge.String()
		}
		branches = append(branches, branch)
		return nil
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate branches", goerr.V("dir", x.dir))
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// TrackBranch creates the local branch from its remote-tracking branch when
// missing and sets its upstream to the bound remote.
func (x *WorkingCopy) TrackBranch(ctx context.Context, name types.BranchName) error {
	remote, err := x.bound()
	if err != nil {
		return err
	}

	local := plumbing.NewBranchReferenceName(string(name))
	if _, err := x.repo.Reference(local, false); errors.Is(err, plumbing.ErrReferenceNotFound) {
		remoteRef, err := x.repo.Reference(plumbing.NewRemoteReferenceName(remote.Name, string(name)), true)
		if err != nil {
			return goerr.Wrap(err, "remote branch not found",
				goerr.V("dir", x.dir),
				goerr.V("branch", name),
			)
		}
		if err := x.repo.Storer.SetReference(plumbing.NewHashReference(local, remoteRef.Hash())); err != nil {
			return goerr.Wrap(err, "failed to create local branch",
				goerr.V("dir", x.dir),
				goerr.V("branch", name),
			)
		}
	} else if err != nil {
		return goerr.Wrap(err, "failed to read local branch",
			goerr.V("dir", x.dir),
			goerr.V("branch", name),
		)
	}

	cfg, err := x.repo.Config()
	if err != nil {
		return goerr.Wrap(err, "failed to read config", goerr.V("dir", x.dir))
	}
	cfg.Branches[string(name)] = &config.Branch{
		Name:   string(name),
		Remote: remote.Name,
		Merge:  local,
	}
	if err := x.repo.SetConfig(cfg); err != nil {
		return goerr.Wrap(err, "failed to set tracking branch",
			goerr.V("dir", x.dir),
			goerr.V("branch", name),
		)
	}

	return nil
}

// Checkout switches to the branch discarding local modifications
func (x *WorkingCopy) Checkout(ctx context.Context, name types.BranchName) error {
	wt, err := x.repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("dir", x.dir))
	}

	if err := wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(string(name)),
		Force:  true,
	}); err != nil {
		return goerr.Wrap(err, "failed to checkout",
			goerr.V("dir", x.dir),
			goerr.V("branch", name),
		)
	}
	return nil
}

// Pull fast-forwards the checked out branch from the bound remote. Local
// modifications are reset first so incoming content always wins.
func (x *WorkingCopy) Pull(ctx context.Context, name types.BranchName) error {
	remote, err := x.bound()
	if err != nil {
		return err
	}

	wt, err := x.repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("dir", x.dir))
	}
	if err := wt.Reset(&git.ResetOptions{Mode: git.HardReset}); err != nil {
		return goerr.Wrap(err, "failed to reset worktree",
			goerr.V("dir", x.dir),
			goerr.V("branch", name),
		)
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    remote.Name,
		ReferenceName: plumbing.NewBranchReferenceName(string(name)),
		SingleBranch:  true,
		Auth:          auth(*remote),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to pull",
			goerr.V("dir", x.dir),
			goerr.V("branch", name),
		)
	}
	return nil
}

func (x *WorkingCopy) push(ctx context.Context, spec config.RefSpec) (types.PushResult, error) {
	remote, err := x.bound()
	if err != nil {
		return types.PushUpToDate, err
	}

	logging.From(ctx).Log(ctx, logging.LevelTrace, "git push",
		slog.String("dir", x.dir),
		slog.String("remote", remote.Name),
		slog.String("refspec", spec.String()),
	)
	err = x.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote.Name,
		RefSpecs:   []config.RefSpec{spec},
		Auth:       auth(*remote),
	})
	switch {
	case err == nil:
		return types.PushUpdated, nil
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		return types.PushUpToDate, nil
	default:
		return types.PushUpToDate, goerr.Wrap(err, "failed to push",
			goerr.V("dir", x.dir),
			goerr.V("refspec", spec),
		)
	}
}

func (x *WorkingCopy) Push(ctx context.Context, name types.BranchName) (types.PushResult, error) {
	ref := plumbing.NewBranchReferenceName(string(name))
	return x.push(ctx, config.RefSpec(ref+":"+ref))
}

func (x *WorkingCopy) PushTags(ctx context.Context) (types.PushResult, error) {
	return x.push(ctx, config.RefSpec("refs/tags/*:refs/tags/*"))
}
