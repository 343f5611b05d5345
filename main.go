package main

import "github.com/llehouerou/lyrifi/internal/cli"

func main() {
	cli.Execute()
}
