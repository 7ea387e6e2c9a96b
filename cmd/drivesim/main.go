package main

import "drivesim/internal/game"

func main() {
	game.Run()
}
