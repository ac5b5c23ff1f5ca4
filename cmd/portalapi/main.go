package main

import "github.com/aaalawyers/trainingportal/cmd/portalapi/cmd"

func main() {
	cmd.Execute()
}
