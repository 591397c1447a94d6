package main

import "github.com/mhsvai/amar-khata-by-mhshahin/cmd"

func main() {
	cmd.Execute()
}
