package main

import "github.com/XavierBriggs/fortuna/services/player-report-service/internal/cli"

func main() {
	cli.Execute()
}
