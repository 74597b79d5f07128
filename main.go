package main

import (
	"fmt"
	"os"

	"spendlens/cmd/analyze"
	"spendlens/cmd/classify"
	"spendlens/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(analyze.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
