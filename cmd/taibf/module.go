package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/sources"
)

type Module struct {
	dscope.Module
	BF      bf.Module
	Sources sources.Module
	Debugs  debugs.Module
}
