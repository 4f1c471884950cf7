package main

import "github.com/pixelvide/pmail/pkg/cli"

func main() {
	cli.Execute()
}
