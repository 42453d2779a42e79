package main

import "github.com/banachtech/patent-valuation/cmd"

func main() {
	cmd.Execute()
}
