package main

import (
	"github.com/NVIDIA/stateview/pkg/cli"
)

func main() {
	cli.Execute()
}
