package gramconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gram/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
