package main

import "github.com/encodeous/bestpath/cmd"

func main() {
	cmd.Execute()
}
