package app

import (
	"strings"

	"github.com/gorewood/tiny/internal/output"
)

// Action is one thing a tiny invocation does.
type Action int

// Actions, in help order.
const (
	ActionNone Action = iota
	ActionInit
	ActionBlog
	ActionPublish
	ActionList
	ActionPreview
	ActionServe
)

var actionNames = map[Action]string{
	ActionInit:    "init",
	ActionBlog:    "blog",
	ActionPublish: "publish",
	ActionList:    "list",
	ActionPreview: "preview",
	ActionServe:   "serve",
}

// UsageMessage is shown when no valid action is given.
const UsageMessage = "tiny takes a single argument; try tiny init, tiny blog, or tiny publish"

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction maps the positional arguments to an action. Exactly one
// known action name is accepted.
func ParseAction(args []string) (Action, error) {
	if len(args) != 1 {
		return ActionNone, output.NewUsageError(UsageMessage)
	}
	name := strings.TrimSpace(args[0])
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return ActionNone, output.NewUsageError("unknown action " + `"` + name + `"; ` + UsageMessage)
}
