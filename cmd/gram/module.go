package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/gram/debugs"
	"github.com/reusee/gram/gramconfigs"
)

type Module struct {
	dscope.Module
	Configs gramconfigs.Module
	Debugs  debugs.Module
}
