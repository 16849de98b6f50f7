package main

import "github.com/matheus3301/dmsync/cmd/dmctl/cmd"

func main() {
	cmd.Execute()
}
