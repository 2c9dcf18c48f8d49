package main

import "github.com/hotfolder/hotfolder/cmd/hotfolder/cmd"

func main() {
	cmd.Execute()
}
