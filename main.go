package main

import "github.com/theirongolddev/pricecalc/cmd"

func main() {
	cmd.Execute()
}
