package main

import "github.com/aaalawyers/trainingportal/cmd/portalctl/cmd"

func main() {
	cmd.Execute()
}
