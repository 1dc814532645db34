package action

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/kasuboski/nyaaz/config"
	"github.com/kasuboski/nyaaz/pkg/logger"
	"go.uber.org/zap"
)

//go:generate mockgen -package mocks -destination mocks/notifier.go github.com/kasuboski/nyaaz/pkg/action Notifier

var command = exec.Command

// Notification describes a newly found episode
type Notification struct {
	Title   string
	Episode int32
	URL     string
}

// Notifier is told about every newly found episode
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Executor starts the configured commands for each notification and does not wait for them
type Executor struct {
	actions []config.Action
}

func NewExecutor(actions []config.Action) *Executor {
	return &Executor{actions: actions}
}

// Notify starts every configured action in order. Failing to start one is logged and the rest still run.
func (e *Executor) Notify(ctx context.Context, n Notification) {
	log := logger.FromCtx(ctx)

	for _, a := range e.actions {
		args := make([]string, len(a.Args))
		for i, arg := range a.Args {
			args[i] = Expand(arg, n)
		}

		cmd := command(a.Command, args...) //nolint:gosec
		if err := cmd.Start(); err != nil {
			log.Errorw("failed to start action", "command", a.Command, zap.Strings("args", args), zap.Error(err))
			continue
		}

		log.Debugw("started action", "command", a.Command, "pid", cmd.Process.Pid)
		_ = cmd.Process.Release()
	}
}

// Expand replaces $title, $episode and $url in arg. Replaced text is not expanded again.
func Expand(arg string, n Notification) string {
	r := strings.NewReplacer(
		"$title", n.Title,
		"$episode", strconv.Itoa(int(n.Episode)),
		"$url", n.URL,
	)
	return r.Replace(arg)
}
