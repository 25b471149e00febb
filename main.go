package main

import (
	"fmt"
	"os"

	"luzialabs/luzia/cmd/analyze"
	"luzialabs/luzia/cmd/configure"
	"luzialabs/luzia/cmd/estimate"
	"luzialabs/luzia/cmd/history"
	"luzialabs/luzia/cmd/predict"
	"luzialabs/luzia/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(history.Cmd)
	root.Cmd.AddCommand(predict.Cmd)
	root.Cmd.AddCommand(estimate.Cmd)
	root.Cmd.AddCommand(configure.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
