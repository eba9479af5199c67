package main

import (
	"highlight-vmaf-service/app"
	"highlight-vmaf-service/pkg/observability"
)

func main() {
	observability.StartProfiling("highlight-vmaf-service")
	app.Run()
}
