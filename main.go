package main

import "github.com/rsna6ce/html2cheader/cmd"

// main is the entry point of the html2cheader CLI application.
func main() {
	cmd.Execute()
}
