package main

import "skinfeed_backend/internal/app"

func main() {
	app.Run()
}
