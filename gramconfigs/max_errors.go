package gramconfigs

import (
	"github.com/reusee/gram/cmds"
	"github.com/reusee/gram/configs"
	"github.com/reusee/gram/vars"
)

// MaxErrors caps how many file parse failures are reported before giving up.
type MaxErrors int

var _ configs.Configurable = MaxErrors(0)

func (m MaxErrors) ConfigExpr() string {
	return "max_errors"
}

var maxErrorsFlag = cmds.Var[int]("-max-errors")

func (Module) MaxErrors(
	loader configs.Loader,
) MaxErrors {
	if n := vars.FirstNonZero(
		*maxErrorsFlag,
		configs.First[int](loader, MaxErrors(0).ConfigExpr()),
	); n != 0 {
		return MaxErrors(n)
	}
	return 1
}
