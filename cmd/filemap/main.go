package main

import "github.com/filemap-go/filemap/cmd"

func main() {
	cmd.Execute()
}
