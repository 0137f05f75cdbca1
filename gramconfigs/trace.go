package gramconfigs

import (
	"github.com/reusee/gram/cmds"
	"github.com/reusee/gram/configs"
)

// TraceParse logs every parsed node when set.
type TraceParse bool

var _ configs.Configurable = TraceParse(false)

func (t TraceParse) ConfigExpr() string {
	return "trace"
}

var traceFlag = cmds.Switch("-trace")

func (Module) TraceParse(
	loader configs.Loader,
) TraceParse {
	if *traceFlag {
		return true
	}
	return TraceParse(configs.First[bool](loader, TraceParse(false).ConfigExpr()))
}
